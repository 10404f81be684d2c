package entity

// LinkBudgetInput holds the six validated link budget terms, all in dB or dBm.
type LinkBudgetInput struct {
	TxPower       float64
	TxGain        float64
	FreeSpaceLoss float64
	MiscLoss      float64
	RxGain        float64
	RxLoss        float64
}
