package assets

// Festivals maps each season to its festival days.
var Festivals = map[Season][]int{
	Spring: {13, 24},
	Summer: {11, 28},
	Fall:   {16, 27},
	Winter: {8, 25},
}

// RainChance is the probability of a rainy day per season.
var RainChance = map[Season]float64{
	Spring: 0.25,
	Summer: 0.15,
	Fall:   0.25,
	Winter: 0.05,
}
