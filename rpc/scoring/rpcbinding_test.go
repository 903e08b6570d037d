package scoring

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestScoreResultsFromStackItem(t *testing.T) {
	item := stackitem.NewArray([]stackitem.Item{
		stackitem.NewStruct([]stackitem.Item{stackitem.Make(95), stackitem.Make(1)}),
		stackitem.NewStruct([]stackitem.Item{stackitem.Make(0), stackitem.Make(2)}),
	})

	res, err := ScoreResultsFromStackItem(item)
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, int64(95), res[0].Score.Int64())
	require.Equal(t, int64(1), res[0].MinerID.Int64())
	require.Equal(t, int64(0), res[1].Score.Int64())
	require.Equal(t, int64(2), res[1].MinerID.Int64())

	_, err = ScoreResultsFromStackItem(stackitem.Make(42))
	require.Error(t, err)

	_, err = ScoreResultsFromStackItem(stackitem.NewArray([]stackitem.Item{
		stackitem.NewStruct([]stackitem.Item{stackitem.Make(95)}),
	}))
	require.Error(t, err)
}

func TestSubmissionStatusFromStackItem(t *testing.T) {
	var s ScoringSubmissionStatus

	err := s.FromStackItem(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(false),
		stackitem.Make("registry unavailable"),
	}))
	require.NoError(t, err)
	require.False(t, s.Success)
	require.Equal(t, "registry unavailable", s.Message)

	require.Error(t, s.FromStackItem(stackitem.Make(1)))
}

func TestWeightsSubmittedEventsFromApplicationLog(t *testing.T) {
	_, err := WeightsSubmittedEventsFromApplicationLog(nil)
	require.Error(t, err)

	hash := util.Uint160{1, 2, 3}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					ScriptHash: hash,
					Name:       "SomethingElse",
					Item:       stackitem.NewArray(nil),
				},
				{
					ScriptHash: hash,
					Name:       "WeightsSubmitted",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(big.NewInt(7)),
						stackitem.Make(big.NewInt(2)),
					}),
				},
			},
		}},
	}

	events, err := WeightsSubmittedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, int64(7), events[0].SubnetID.Int64())
	require.Equal(t, int64(2), events[0].MinerCount.Int64())
}
