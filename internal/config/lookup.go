package config

// LookupConfig controls session behavior.
type LookupConfig struct {
	GroupPreview    int  // entries shown per collapsed country group
	InitialLimit    int  // players shown before the first search
	DiscardStale    bool // drop results of searches superseded by a newer one
	ResetExpansion  bool // clear expanded countries whenever results change
	CollateLanguage string
}

func loadLookup() LookupConfig {
	return LookupConfig{
		GroupPreview:    intEnvOrDefault(envGroupPreview, defaultGroupPreview),
		InitialLimit:    intEnvOrDefault(envInitialLimit, defaultInitialLimit),
		DiscardStale:    boolEnvOrDefault(envDiscardStale, defaultDiscardStale),
		ResetExpansion:  boolEnvOrDefault(envResetExpansion, defaultResetExpansion),
		CollateLanguage: envOrDefault(envCollateLanguage, defaultCollateLanguage),
	}
}
