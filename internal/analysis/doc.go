package analysis

// Package analysis holds the offline statistics behind the case study: data
// loading and imputation, exploratory summaries, the base OLS sales model and
// the PNG charts the presentation displays.
