package irradiance

var (
	Debug           = false // set to true for verbose debug output
	ForceSequential = false // set to true to disable the parallel reduction
	Progress        = false // set to true to print accumulation progress
)
