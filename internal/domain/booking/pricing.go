package booking

import "errors"

var ErrNegativePrice = errors.New("price cannot be negative")

// PremiumFromHour is the first hour billed at the premium rate.
const PremiumFromHour = 16

// Money is an amount in minor units of the settlement currency.
type Money struct {
	minor int64
}

func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{minor: minor}, nil
}

func (m Money) Minor() int64 {
	return m.minor
}

func (m Money) Major() float64 {
	return float64(m.minor) / 100.0
}

type PriceCalculator interface {
	PriceOf(slot Slot) Money
}

// HourlyTariff charges Base before PremiumFromHour and Premium from then on.
type HourlyTariff struct {
	Base    Money
	Premium Money
}

func NewHourlyTariff(baseMinor, premiumMinor int64) (*HourlyTariff, error) {
	base, err := NewMoney(baseMinor)
	if err != nil {
		return nil, err
	}
	premium, err := NewMoney(premiumMinor)
	if err != nil {
		return nil, err
	}
	return &HourlyTariff{Base: base, Premium: premium}, nil
}

func (t *HourlyTariff) PriceOf(slot Slot) Money {
	if slot.Hour() < PremiumFromHour {
		return t.Base
	}
	return t.Premium
}
