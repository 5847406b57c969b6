package clothing

import "github.com/cory-johannsen/npcgen/internal/game/culture"

// eraPalettes are the dyes an era recolor applies to primary and secondary.
var eraPalettes = map[culture.Era]Palette{
	culture.EraPrehistoric: {Primary: []string{"ochre", "umber"}, Secondary: []string{"bone", "charcoal"}, Accent: []string{"red ochre"}},
	culture.EraAncient:     {Primary: []string{"flax", "madder red"}, Secondary: []string{"indigo", "saffron"}, Accent: []string{"bronze"}},
	culture.EraClassical:   {Primary: []string{"white", "undyed"}, Secondary: []string{"tyrian purple", "saffron"}, Accent: []string{"gold"}},
	culture.EraMedieval:    {Primary: []string{"russet", "undyed"}, Secondary: []string{"woad blue", "madder red"}, Accent: []string{"weld yellow"}},
	culture.EraRenaissance: {Primary: []string{"crimson", "black"}, Secondary: []string{"ultramarine", "ivory"}, Accent: []string{"gold"}},
	culture.EraEarlyModern: {Primary: []string{"indigo", "brown"}, Secondary: []string{"cochineal red", "cream"}, Accent: []string{"brass"}},
	culture.EraIndustrial:  {Primary: []string{"black", "grey"}, Secondary: []string{"mauve", "navy"}, Accent: []string{"white"}},
	culture.EraModern:      {Primary: []string{"denim blue", "khaki"}, Secondary: []string{"white", "olive"}, Accent: []string{"red"}},
	culture.EraFuture:      {Primary: []string{"graphite", "silver"}, Secondary: []string{"cyan", "white"}, Accent: []string{"neon green"}},
}

// zonePalettes are the colors a culture recolor applies to secondary and accent.
var zonePalettes = map[culture.Zone]Palette{
	culture.ZoneEuropean:              {Primary: []string{"undyed", "brown"}, Secondary: []string{"green", "blue"}, Accent: []string{"red"}},
	culture.ZoneMENA:                  {Primary: []string{"white", "sand"}, Secondary: []string{"indigo", "black"}, Accent: []string{"gold", "turquoise"}},
	culture.ZoneCentralAsian:          {Primary: []string{"felt grey", "brown"}, Secondary: []string{"crimson", "blue"}, Accent: []string{"silver"}},
	culture.ZoneSouthAsian:            {Primary: []string{"white", "saffron"}, Secondary: []string{"madder red", "indigo"}, Accent: []string{"gold", "turmeric yellow"}},
	culture.ZoneEastAsian:             {Primary: []string{"indigo", "grey"}, Secondary: []string{"vermilion", "black"}, Accent: []string{"jade green"}},
	culture.ZoneSubSaharan:            {Primary: []string{"earth brown", "white"}, Secondary: []string{"indigo", "ochre"}, Accent: []string{"kente gold", "red"}},
	culture.ZoneOceania:               {Primary: []string{"bark brown", "tan"}, Secondary: []string{"black", "ochre"}, Accent: []string{"shell white"}},
	culture.ZoneSouthAmerican:         {Primary: []string{"alpaca brown", "white"}, Secondary: []string{"cochineal red", "yellow"}, Accent: []string{"turquoise"}},
	culture.ZoneNorthAmericanNative:   {Primary: []string{"buckskin", "tan"}, Secondary: []string{"red ochre", "black"}, Accent: []string{"turquoise", "white"}},
	culture.ZoneNorthAmericanColonial: {Primary: []string{"homespun brown", "undyed"}, Secondary: []string{"butternut", "indigo"}, Accent: []string{"red"}},
}

// EraPalette returns the palette associated with an era.
func EraPalette(e culture.Era) Palette {
	return eraPalettes[e].clone()
}

// ZonePalette returns the palette associated with a cultural zone.
func ZonePalette(z culture.Zone) Palette {
	return zonePalettes[z].clone()
}
