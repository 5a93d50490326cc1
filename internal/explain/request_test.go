package explain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest_LogOnly(t *testing.T) {
	req, err := ParseRequest([]byte(`{"log": "ERROR something broke"}`))
	require.NoError(t, err)
	assert.Equal(t, "ERROR something broke", req.Log)
	assert.Nil(t, req.Context)
}

func TestParseRequest_WithContext(t *testing.T) {
	req, err := ParseRequest([]byte(`{"log": "x", "context": {"host": "node-03"}}`))
	require.NoError(t, err)
	assert.Equal(t, "node-03", req.Context["host"])
}

func TestParseRequest_MissingLog(t *testing.T) {
	_, err := ParseRequest([]byte(`{"foo": "bar"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingLog))
}

func TestParseRequest_NullLog(t *testing.T) {
	_, err := ParseRequest([]byte(`{"log": null}`))
	assert.True(t, errors.Is(err, ErrMissingLog))
}

func TestParseRequest_EmptyLog(t *testing.T) {
	_, err := ParseRequest([]byte(`{"log": ""}`))
	assert.True(t, errors.Is(err, ErrBadLogType))
}

func TestParseRequest_NonStringLog(t *testing.T) {
	_, err := ParseRequest([]byte(`{"log": 123}`))
	assert.True(t, errors.Is(err, ErrBadLogType))
}

func TestParseRequest_ContextNotAnObject(t *testing.T) {
	_, err := ParseRequest([]byte(`{"log": "x", "context": ["a", "b"]}`))
	assert.True(t, errors.Is(err, ErrBadContextType))
}

func TestParseRequest_NullContextIsFine(t *testing.T) {
	req, err := ParseRequest([]byte(`{"log": "x", "context": null}`))
	require.NoError(t, err)
	assert.Nil(t, req.Context)
}

func TestParseRequest_BodyNotJSON(t *testing.T) {
	_, err := ParseRequest([]byte(`not json`))
	require.Error(t, err)
}
