package service

import (
	crypto "crypto/rand"
	"errors"
	"math/big"
	"math/rand"

	"go.uber.org/zap"
)

// cryptoRand picks quiz cards and shuffles choices from crypto/rand, falling back to
// math/rand when the system source fails.
type cryptoRand struct {
	log *zap.Logger
}

func newCryptoRand(log *zap.Logger) cryptoRand {
	return cryptoRand{log: log}
}

func (r cryptoRand) Intn(n int) int {
	pos, err := randomPosition(int64(n))
	if err != nil {
		r.log.Warn("crypto/rand failed, using math/rand fallback", zap.Error(err))
		if n <= 0 {
			return 0
		}
		return rand.Intn(n)
	}
	return pos
}

func randomPosition(max int64) (int, error) {
	if max <= 0 {
		return 0, errors.New("max must be greater than 0")
	}

	n, err := crypto.Int(crypto.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}

	return int(n.Int64()), nil
}
