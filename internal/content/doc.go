package content

// Package content holds the narrative of the case study as typed data. Text
// fields may contain Markdown emphasis; figure assets are file names relative
// to the configured asset directory.
