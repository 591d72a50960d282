package pokeapi

import (
	"strings"

	"github.com/five82/dex/internal/catalog"
)

// IndexResponse mirrors GET /pokemon?limit=N.
type IndexResponse struct {
	Count   int         `json:"count"`
	Next    *string     `json:"next"`
	Results []Reference `json:"results"`
}

// Reference is one index entry: a name plus the detail URL.
type Reference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PokemonPayload mirrors the subset of GET /pokemon/{id} that the catalog uses.
type PokemonPayload struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Sprites   Sprites       `json:"sprites"`
	Types     []TypeSlot    `json:"types"`
	Stats     []StatSlot    `json:"stats"`
	Abilities []AbilitySlot `json:"abilities"`
}

// Sprites holds artwork references.
type Sprites struct {
	FrontDefault string       `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites holds the alternate artwork sets.
type OtherSprites struct {
	OfficialArtwork Artwork `json:"official-artwork"`
}

// Artwork is a single artwork set.
type Artwork struct {
	FrontDefault string `json:"front_default"`
}

// TypeSlot is one entry of the ordered type list.
type TypeSlot struct {
	Slot int      `json:"slot"`
	Type Resource `json:"type"`
}

// StatSlot is one base stat.
type StatSlot struct {
	BaseStat int      `json:"base_stat"`
	Stat     Resource `json:"stat"`
}

// AbilitySlot is one ability.
type AbilitySlot struct {
	IsHidden bool     `json:"is_hidden"`
	Ability  Resource `json:"ability"`
}

// Resource is the API's named resource shape.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Record converts the wire payload into a catalog record.
func (p PokemonPayload) Record() catalog.Record {
	rec := catalog.Record{
		ID:      p.ID,
		Name:    p.Name,
		Artwork: p.ArtworkURL(),
	}
	if len(p.Types) > 0 {
		rec.Types = make([]string, 0, len(p.Types))
		for _, t := range p.Types {
			rec.Types = append(rec.Types, t.Type.Name)
		}
	}
	if len(p.Stats) > 0 {
		rec.Stats = make([]catalog.Stat, 0, len(p.Stats))
		for _, s := range p.Stats {
			rec.Stats = append(rec.Stats, catalog.Stat{Name: s.Stat.Name, Value: s.BaseStat})
		}
	}
	if len(p.Abilities) > 0 {
		rec.Abilities = make([]string, 0, len(p.Abilities))
		for _, a := range p.Abilities {
			rec.Abilities = append(rec.Abilities, a.Ability.Name)
		}
	}
	return rec
}

// ArtworkURL prefers the official artwork and falls back to the default sprite.
func (p PokemonPayload) ArtworkURL() string {
	if art := strings.TrimSpace(p.Sprites.Other.OfficialArtwork.FrontDefault); art != "" {
		return art
	}
	return strings.TrimSpace(p.Sprites.FrontDefault)
}
