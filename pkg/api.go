package pkg

// BuildPacks runs a full build with the default log level resolution.
func BuildPacks(opts RunOptions) {
	BuildPacksWithLogLevel(opts, "")
}
