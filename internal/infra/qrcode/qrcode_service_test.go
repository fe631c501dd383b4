package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateAndParse(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateJoinQR("WDW-4821")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	payload, err := json.Marshal(QRCodeData{ShareCode: "WDW-4821", Type: "vacation_join"})
	require.NoError(t, err)

	code, err := svc.ParseJoinQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "WDW-4821", code)
}

func TestQRCodeService_ParseRejectsWrongType(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{ShareCode: "WDW-4821", Type: "merchant"})
	require.NoError(t, err)

	_, err = svc.ParseJoinQR(string(payload))
	assert.Error(t, err)

	_, err = svc.ParseJoinQR("not json")
	assert.Error(t, err)
}

func TestQRCodeService_GenerateRejectsEmptyCode(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateJoinQR("")
	assert.Error(t, err)
}
