package jfmt

// builtinFormats returns the built-in journal catalog. Each call returns a
// fresh slice so callers cannot mutate the seed data.
func builtinFormats() []JournalFormat {
	return []JournalFormat{
		{
			ID:             "nature",
			Name:           "Nature",
			Description:    "Multidisciplinary research articles",
			LineSpacing:    1.5,
			WordLimit:      3000,
			ReferenceStyle: StyleNature,
			FontFamily:     "Times New Roman",
			FontSize:       12,
			Margins:        Margins{Top: 1, Bottom: 1, Left: 1, Right: 1},
		},
		{
			ID:             "science",
			Name:           "Science",
			Description:    "Research articles and reports",
			LineSpacing:    2,
			WordLimit:      2500,
			ReferenceStyle: StyleScience,
			FontFamily:     "Times New Roman",
			FontSize:       12,
			Margins:        Margins{Top: 1, Bottom: 1, Left: 1, Right: 1},
		},
		{
			ID:             "ieee-access",
			Name:           "IEEE Access",
			Description:    "Open-access engineering and computing",
			LineSpacing:    1,
			WordLimit:      8000,
			ReferenceStyle: StyleIEEE,
			FontFamily:     "Times New Roman",
			FontSize:       10,
			Margins:        Margins{Top: 0.75, Bottom: 0.75, Left: 0.625, Right: 0.625},
		},
		{
			ID:             "plos-one",
			Name:           "PLOS ONE",
			Description:    "Open-access multidisciplinary science",
			LineSpacing:    2,
			WordLimit:      5000,
			ReferenceStyle: StyleVancouver,
			FontFamily:     "Arial",
			FontSize:       11,
			Margins:        Margins{Top: 1, Bottom: 1, Left: 1, Right: 1},
		},
		{
			ID:             "lancet",
			Name:           "The Lancet",
			Description:    "Clinical medicine and global health",
			LineSpacing:    2,
			WordLimit:      3500,
			ReferenceStyle: StyleVancouver,
			FontFamily:     "Times New Roman",
			FontSize:       12,
			Margins:        Margins{Top: 1, Bottom: 1, Left: 1, Right: 1},
		},
		{
			ID:             "jama",
			Name:           "JAMA",
			Description:    "Medical research and clinical practice",
			LineSpacing:    2,
			WordLimit:      3000,
			ReferenceStyle: StyleAMA,
			FontFamily:     "Times New Roman",
			FontSize:       12,
			Margins:        Margins{Top: 1, Bottom: 1, Left: 1, Right: 1},
		},
		{
			ID:             "psych-review",
			Name:           "Psychological Review",
			Description:    "Theoretical contributions to psychology",
			LineSpacing:    2,
			WordLimit:      7500,
			ReferenceStyle: StyleAPA,
			FontFamily:     "Times New Roman",
			FontSize:       12,
			Margins:        Margins{Top: 1, Bottom: 1, Left: 1, Right: 1},
		},
		{
			ID:             "cje",
			Name:           "Cambridge Journal of Economics",
			Description:    "Heterodox and applied economics",
			LineSpacing:    1.5,
			WordLimit:      6500,
			ReferenceStyle: StyleHarvard,
			FontFamily:     "Times New Roman",
			FontSize:       12,
			Margins:        Margins{Top: 1.25, Bottom: 1.25, Left: 1.25, Right: 1.25},
		},
		{
			ID:             "am-hist-review",
			Name:           "The American Historical Review",
			Description:    "Historical scholarship across all fields",
			LineSpacing:    2,
			WordLimit:      9000,
			ReferenceStyle: StyleChicago,
			FontFamily:     "Times New Roman",
			FontSize:       12,
			Margins:        Margins{Top: 1, Bottom: 1, Left: 1, Right: 1},
		},
		{
			ID:             "pmla",
			Name:           "PMLA",
			Description:    "Literary and language scholarship",
			LineSpacing:    2,
			WordLimit:      9000,
			ReferenceStyle: StyleMLA,
			FontFamily:     "Times New Roman",
			FontSize:       12,
			Margins:        Margins{Top: 1, Bottom: 1, Left: 1, Right: 1},
		},
		{
			ID:             "jacs",
			Name:           "Journal of the American Chemical Society",
			Description:    "Chemistry research communications",
			LineSpacing:    1.5,
			WordLimit:      4000,
			ReferenceStyle: StyleACS,
			FontFamily:     "Arial",
			FontSize:       11,
			Margins:        Margins{Top: 0.75, Bottom: 0.75, Left: 0.75, Right: 0.75},
		},
		{
			ID:             "bioscience",
			Name:           "BioScience",
			Description:    "Organismal and ecosystem biology overviews",
			LineSpacing:    2,
			WordLimit:      6000,
			ReferenceStyle: StyleCSE,
			FontFamily:     "Times New Roman",
			FontSize:       12,
			Margins:        Margins{Top: 1, Bottom: 1, Left: 1, Right: 1},
		},
	}
}
