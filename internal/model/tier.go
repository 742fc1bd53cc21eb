package model

import apperrors "go-gin-travel-agency/pkg/app_errors"

// Tier 服務等級
type Tier string

const (
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
)

// IsValid 驗證等級是否有效
func (t Tier) IsValid() bool {
	switch t {
	case TierBasic, TierPremium:
		return true
	}
	return false
}

func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", apperrors.ErrUnknownTier
	}
	return t, nil
}
