package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewOrderReference generates a short human-readable order reference.
func NewOrderReference() string {
	id := uuid.New().String()
	return fmt.Sprintf("ORD-%s", strings.ToUpper(id[:8]))
}
