package deploy

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func validTestPrm(t *testing.T) Prm {
	acc, err := wallet.NewAccount()
	require.NoError(t, err)

	ownerKey, err := keys.NewPrivateKey()
	require.NoError(t, err)

	return Prm{
		Logger:       zaptest.NewLogger(t),
		Blockchain:   struct{ Blockchain }{},
		LocalAccount: acc,
		Scoring: ScoringPrm{
			Owner:              ownerKey.PublicKey(),
			SubnetID:           7,
			Registry:           util.Uint160{1, 2, 3},
			MaxScore:           100,
			ResponseTimeWeight: 50,
		},
	}
}

func TestValidatePrm(t *testing.T) {
	require.NoError(t, validatePrm(validTestPrm(t)))

	t.Run("missing logger", func(t *testing.T) {
		prm := validTestPrm(t)
		prm.Logger = nil
		require.Error(t, validatePrm(prm))
	})

	t.Run("missing owner", func(t *testing.T) {
		prm := validTestPrm(t)
		prm.Scoring.Owner = nil
		require.Error(t, validatePrm(prm))
	})

	t.Run("missing registry", func(t *testing.T) {
		prm := validTestPrm(t)
		prm.Scoring.Registry = util.Uint160{}
		require.Error(t, validatePrm(prm))
	})

	t.Run("bad scoring parameters", func(t *testing.T) {
		prm := validTestPrm(t)
		prm.Scoring.MaxScore = 0
		require.Error(t, validatePrm(prm))

		prm = validTestPrm(t)
		prm.Scoring.ResponseTimeWeight = -1
		require.Error(t, validatePrm(prm))
	})
}
