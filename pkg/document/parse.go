package document

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlib"
	"gopkg.in/yaml.v3"
)

// Parse decodes a document. Names of categories, weapons, barrels and
// ammo types are trimmed and invalid UTF-8 sequences are replaced.
func Parse(data []byte, f Format) (*Document, error) {
	var doc Document
	var err error

	switch f {
	case JSON:
		enc := gnfmt.GNjson{}
		err = enc.Decode(data, &doc)
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = fmt.Errorf("unsupported format %s", f)
	}
	if err != nil {
		return nil, ParseError(f, err)
	}

	doc.clean()
	return &doc, nil
}

func (d *Document) clean() {
	for i := range d.Categories {
		c := &d.Categories[i]
		c.Name = cleanName(c.Name)
		for j := range c.Weapons {
			w := &c.Weapons[j]
			w.Name = cleanName(w.Name)
			for k := range w.Stats {
				s := &w.Stats[k]
				s.BarrelType = cleanName(s.BarrelType)
				s.AmmoType = cleanName(s.AmmoType)
			}
			if len(w.AmmoStats) == 0 {
				continue
			}
			w.AmmoStats = cleanAmmoStats(w.AmmoStats)
		}
	}
}

// cleanAmmoStats cleans keys of ammo stats. When two raw keys become
// the same name, the one that sorts first is kept.
func cleanAmmoStats(stats map[string]AmmoStat) map[string]AmmoStat {
	keys := slices.Sorted(maps.Keys(stats))
	res := make(map[string]AmmoStat, len(stats))
	for _, k := range keys {
		name := cleanName(k)
		if _, ok := res[name]; ok {
			continue
		}
		res[name] = stats[k]
	}
	return res
}

func cleanName(s string) string {
	return strings.TrimSpace(gnlib.FixUtf8(s))
}

// Stats returns number of categories, weapons and stat entries.
func (d *Document) Stats() (categories, weapons, stats int) {
	categories = len(d.Categories)
	for _, c := range d.Categories {
		weapons += len(c.Weapons)
		for _, w := range c.Weapons {
			stats += len(w.Stats)
		}
	}
	return categories, weapons, stats
}
