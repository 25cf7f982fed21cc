package models

// DefaultCodeReferences returns the built-in NEC reference set seeded on
// first run and after a failed snapshot load.
func DefaultCodeReferences() []CodeReference {
	return []CodeReference{
		{
			ID:         "1",
			Section:    "310.16",
			Title:      "Conductor Ampacity Tables",
			Content:    "Allowable ampacities of insulated conductors rated up to and including 2000 volts, 60°C through 90°C, not more than three current-carrying conductors in raceway, cable, or earth.",
			Category:   CodeWireAmpacity,
			Bookmarked: true,
		},
		{
			ID:         "2",
			Section:    "210.8",
			Title:      "GFCI Protection Requirements",
			Content:    "GFCI protection required for 125V-250V receptacles in bathrooms, kitchens, outdoors, crawl spaces, unfinished basements, garages, and other specified locations.",
			Category:   CodeGFCIAFCI,
			Bookmarked: true,
		},
		{
			ID:         "3",
			Section:    "210.12",
			Title:      "AFCI Protection Requirements",
			Content:    "All 120V, single-phase, 15A and 20A branch circuits supplying outlets in dwelling unit family rooms, dining rooms, living rooms, parlors, libraries, dens, bedrooms, sunrooms, recreation rooms, closets, hallways, and similar rooms shall be protected by AFCI devices.",
			Category:   CodeGFCIAFCI,
			Bookmarked: true,
		},
		{
			ID:         "4",
			Section:    "250.50",
			Title:      "Grounding Electrode System",
			Content:    "All grounding electrodes present at the building shall be bonded together to form the grounding electrode system.",
			Category:   CodeGrounding,
			Bookmarked: false,
		},
		{
			ID:         "5",
			Section:    "314.16",
			Title:      "Box Fill Calculations",
			Content:    "Boxes shall be of sufficient size to provide free space for all enclosed conductors. Volume calculations based on conductor sizes.",
			Category:   CodeBoxFill,
			Bookmarked: true,
		},
		{
			ID:         "6",
			Section:    "314.28",
			Title:      "Pull and Junction Boxes",
			Content:    "Boxes and conduit bodies containing conductors 4 AWG or larger shall meet specific sizing requirements.",
			Category:   CodeBoxFill,
			Bookmarked: false,
		},
		{
			ID:         "7",
			Section:    "Annex C",
			Title:      "Conduit Fill Tables",
			Content:    "Maximum number of conductors in trade sizes of conduit or tubing.",
			Category:   CodeConduitFill,
			Bookmarked: true,
		},
		{
			ID:         "8",
			Section:    "110.14",
			Title:      "Electrical Connections",
			Content:    "Terminals for more than one conductor and terminals used to connect aluminum shall be identified for such use.",
			Category:   CodeGeneral,
			Bookmarked: false,
		},
	}
}
