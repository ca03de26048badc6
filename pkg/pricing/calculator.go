package pricing

import (
	_ "embed"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

//go:embed pricing.yaml
var pricingYaml []byte

type CPUTier struct {
	Cores int     `yaml:"cores" json:"cores"`
	Price float64 `yaml:"price" json:"price"`
}

type SizeTier struct {
	GB    int     `yaml:"gb" json:"gb"`
	Price float64 `yaml:"price" json:"price"`
}

type Table struct {
	BasePrice   float64            `yaml:"basePrice" json:"basePrice"`
	CPU         []CPUTier          `yaml:"cpu" json:"cpu"`
	Memory      []SizeTier         `yaml:"memory" json:"memory"`
	Storage     []SizeTier         `yaml:"storage" json:"storage"`
	Multipliers map[string]float64 `yaml:"multipliers" json:"multipliers"`
}

func NewCalculator() (*Calculator, error) {
	var table Table
	if err := yaml.Unmarshal(pricingYaml, &table); err != nil {
		return nil, fmt.Errorf("failed to parse pricing table: %v", err)
	}
	return &Calculator{table}, nil
}

type Calculator struct {
	table Table
}

func (c Calculator) Table() Table {
	return c.table
}

type Quote struct {
	Provider   string   `json:"provider"`
	Multiplier float64  `json:"multiplier"`
	BasePrice  float64  `json:"basePrice"`
	CPUPrice   float64  `json:"cpuPrice"`
	MemPrice   float64  `json:"memoryPrice"`
	DiskPrice  float64  `json:"storagePrice"`
	Total      float64  `json:"total"`
	Unmatched  []string `json:"unmatched,omitempty"`
}

// Quote prices a resource shape against the tier table. Values off the tier
// breakpoints contribute nothing and are reported in Unmatched instead of
// being interpolated. Unknown providers price at multiplier 1.0.
func (c Calculator) Quote(cpu int, memory int, storage int, provider string) Quote {
	quote := Quote{
		Provider:   provider,
		Multiplier: 1.0,
		BasePrice:  c.table.BasePrice,
	}

	if multiplier, ok := c.table.Multipliers[provider]; ok {
		quote.Multiplier = multiplier
	}

	matched := false
	for _, tier := range c.table.CPU {
		if tier.Cores == cpu {
			quote.CPUPrice = tier.Price
			matched = true
			break
		}
	}
	if !matched {
		quote.Unmatched = append(quote.Unmatched, fmt.Sprintf("cpu:%d", cpu))
	}

	matched = false
	for _, tier := range c.table.Memory {
		if tier.GB == memory {
			quote.MemPrice = tier.Price
			matched = true
			break
		}
	}
	if !matched {
		quote.Unmatched = append(quote.Unmatched, fmt.Sprintf("memory:%d", memory))
	}

	matched = false
	for _, tier := range c.table.Storage {
		if tier.GB == storage {
			quote.DiskPrice = tier.Price
			matched = true
			break
		}
	}
	if !matched {
		quote.Unmatched = append(quote.Unmatched, fmt.Sprintf("storage:%d", storage))
	}

	total := (quote.BasePrice + quote.CPUPrice + quote.MemPrice + quote.DiskPrice) * quote.Multiplier
	quote.Total = roundHalfUp(total)

	return quote
}

// roundHalfUp rounds to two decimals with halves away from zero, matching
// currency expectations rather than banker's rounding.
func roundHalfUp(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
