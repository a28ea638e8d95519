// Package datasets lists the public graph datasets the converter knows how to
// normalize, each with the literal layout of its downloaded file.
package datasets

import (
	"fmt"

	"github.com/gilchrisn/graph-datasets/pkg/normalizer"
)

func snap(path, name string) normalizer.Dataset {
	return normalizer.Dataset{Path: path, Name: name, Extension: ".txt", Separator: "\t", Skip: 4}
}

func csv(path, name string) normalizer.Dataset {
	return normalizer.Dataset{Path: path, Name: name, Extension: ".csv", Separator: ",", Skip: 1}
}

func ego(name string) normalizer.Dataset {
	return normalizer.Dataset{Path: "ego-facebook/", Name: name, Extension: ".edges", Separator: " ", Skip: 0}
}

// All is every supported dataset, in conversion order
var All = []normalizer.Dataset{
	snap("com-amazon/", "com-amazon.ungraph"),
	snap("com-dblp/", "com-dblp.ungraph"),
	snap("com-friendster/", "com-friendster.ungraph"),
	snap("com-livejournal/", "com-lj.ungraph"),
	snap("com-orkut/", "com-orkut.ungraph"),
	snap("com-youtube/", "com-youtube"),

	ego("0"),
	ego("107"),
	ego("348"),
	ego("414"),
	ego("686"),
	ego("1684"),
	ego("1912"),
	ego("3437"),
	ego("3980"),

	snap("email-enron/", "Email-Enron"),
	{Path: "email-eu-core/", Name: "email-Eu-core", Extension: ".txt", Separator: "\t", Skip: 0},

	csv("feather-deezer-social/", "deezer_europe_edges"),
	csv("feather-lastfm-social/", "lastfm_asia_edges"),

	csv("gemsec-deezer/", "HR_edges"),
	csv("gemsec-deezer/", "HU_edges"),
	csv("gemsec-deezer/", "RO_edges"),

	csv("gemsec-facebook/", "artist_edges"),
	csv("gemsec-facebook/", "athletes_edges"),
	csv("gemsec-facebook/", "company_edges"),
	csv("gemsec-facebook/", "government_edges"),
	csv("gemsec-facebook/", "new_sites_edges"),
	csv("gemsec-facebook/", "politician_edges"),
	csv("gemsec-facebook/", "public_figure_edges"),
	csv("gemsec-facebook/", "tvshow_edges"),

	csv("musae-facebook/", "musae_facebook_edges"),

	csv("musae-twitch/", "musae_DE_edges"),
	csv("musae-twitch/", "musae_ENGB_edges"),
	csv("musae-twitch/", "musae_ES_edges"),
	csv("musae-twitch/", "musae_FR_edges"),
	csv("musae-twitch/", "musae_PTBR_edges"),
	csv("musae-twitch/", "musae_RU_edges"),

	snap("roadNet-CA/", "roadNet-CA"),
	snap("roadNet-PA/", "roadNet-PA"),
	snap("roadNet-TX/", "roadNet-TX"),

	csv("twitch-gamers/", "large_twitch_edges"),

	{Path: "wiki-topcats/", Name: "wiki-topcats", Extension: ".txt", Separator: " ", Skip: 0},
}

// Select returns the catalog entries with the given names, in the order
// given. No names selects the whole catalog.
func Select(names ...string) ([]normalizer.Dataset, error) {
	if len(names) == 0 {
		return All, nil
	}

	byName := make(map[string]normalizer.Dataset, len(All))
	for _, ds := range All {
		byName[ds.Name] = ds
	}

	selected := make([]normalizer.Dataset, 0, len(names))
	for _, name := range names {
		ds, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown dataset: %s", name)
		}
		selected = append(selected, ds)
	}
	return selected, nil
}
