package matrix

import (
	"testing"

	"github.com/go-qr/qrcore/mask"
	"github.com/go-qr/qrcore/version"
	"github.com/stretchr/testify/assert"
)

func TestPenaltyScorePenalizesLongRuns(t *testing.T) {
	ver := version.New(1)

	allZero := New(ver)
	raw := int(ver.NumRawDataModules())
	zeroData := make([]byte, (raw+7)/8)
	allZero.DrawCodewords(zeroData)

	mixed := New(ver)
	mixedData := make([]byte, (raw+7)/8)
	for i := range mixedData {
		mixedData[i] = 0b10101010
	}
	mixed.DrawCodewords(mixedData)

	assert.Greater(t, allZero.PenaltyScore(), mixed.PenaltyScore())
}

func TestPenaltyScoreVariesByMask(t *testing.T) {
	ver := version.New(3)
	raw := int(ver.NumRawDataModules())
	data := make([]byte, (raw+7)/8)
	for i := range data {
		data[i] = byte(i*53 + 7)
	}

	scores := map[uint8]int32{}
	for _, mk := range mask.All() {
		m := New(ver)
		m.DrawCodewords(data)
		m.ApplyMask(mk)
		scores[mk.Value()] = m.PenaltyScore()
	}
	assert.Len(t, scores, 8)
}
