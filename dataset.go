package dpuscale

// BenchmarkDataset returns the measured sweep from 1 to 512 DPUs.
//
// Times are averages in microseconds. The run time roughly halves with
// each doubling of DPUs while the inter-DPU time flattens out past 32
// DPUs, so the total does not scale linearly.
func BenchmarkDataset() SampleSet {
	return SampleSet{
		DPUCounts: []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 512},
		RunTimes: []float64{
			394895.416, 197483.966, 98635.911, 49313.392, 25141.189,
			12378.411, 6182.441, 3091.354, 1573.473, 815.165,
		},
		InterDPUTimes: []float64{
			317870.005, 237853.874, 116936.599, 56881.567, 43593.283,
			33225.756, 32930.789, 32895.336, 19431.199, 19269.901,
		},
	}
}
