package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

const (
	RoomCodeLength   = 8
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateRoomCode returns a short upper-case code that is easy to read out
// loud and type on another device.
func GenerateRoomCode() (string, error) {
	alphabetSize := big.NewInt(int64(len(roomCodeAlphabet)))

	var code strings.Builder
	code.Grow(RoomCodeLength)

	for range RoomCodeLength {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to read random index: %w", err)
		}
		code.WriteByte(roomCodeAlphabet[n.Int64()])
	}

	return code.String(), nil
}

// NormalizeRoomID makes room codes case-insensitive.
func NormalizeRoomID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

func GeneratePlayerID() string {
	return uuid.NewString()
}

func GeneratePlayerName() string {
	return fmt.Sprintf("Player %d", mrand.IntN(1000)) //nolint: gosec // display name only
}
