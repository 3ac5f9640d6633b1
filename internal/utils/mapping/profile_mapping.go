package mapping

import (
	"strings"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/models"
)

// ToDomainProfile validates a profile row and normalizes it into the canonical Profile.
// The display name is display_name when set, then full_name, else nil. Blank strings are
// treated as missing.
func ToDomainProfile(m models.Profile) (domain.Profile, error) {
	if err := checkRow("profiles", m.UserID, m); err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		UserID:      m.UserID,
		DisplayName: firstNonBlank(m.DisplayName, m.FullName),
		Email:       firstNonBlank(m.Email),
		AvatarURL:   firstNonBlank(m.AvatarURL),
	}, nil
}

func firstNonBlank(values ...*string) *string {
	for _, v := range values {
		if v == nil {
			continue
		}
		if s := strings.TrimSpace(*v); s != "" {
			return &s
		}
	}
	return nil
}
