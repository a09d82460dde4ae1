package handler

import (
	"net/url"
	"testing"

	"daylog/internal/activity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageDefaults(t *testing.T) {
	limit, offset := parsePage(url.Values{})
	assert.Equal(t, activity.DefaultLimit, limit)
	assert.Equal(t, activity.DefaultOffset, offset)
}

func TestParsePageValues(t *testing.T) {
	limit, offset := parsePage(url.Values{"limit": {"25"}, "offset": {"50"}})
	assert.Equal(t, 25, limit)
	assert.Equal(t, 50, offset)
}

func TestParsePageZeroLimitFallsBack(t *testing.T) {
	limit, offset := parsePage(url.Values{"limit": {"0"}, "offset": {"0"}})
	assert.Equal(t, activity.DefaultLimit, limit)
	assert.Equal(t, 0, offset)
}

func TestParsePageRejectsGarbage(t *testing.T) {
	limit, offset := parsePage(url.Values{"limit": {"abc"}, "offset": {"-1"}})
	assert.Equal(t, activity.DefaultLimit, limit)
	assert.Equal(t, activity.DefaultOffset, offset)
}

func TestIntQueryDistinguishesZeroFromAbsent(t *testing.T) {
	v, err := intQuery(url.Values{"hour": {"0"}}, "hour")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 0, *v)

	v, err = intQuery(url.Values{}, "hour")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = intQuery(url.Values{"hour": {"noon"}}, "hour")
	assert.Error(t, err)
}

func TestStrQueryTrimsAndNils(t *testing.T) {
	assert.Nil(t, strQuery(url.Values{}, "title"))
	assert.Nil(t, strQuery(url.Values{"title": {"   "}}, "title"))

	v := strQuery(url.Values{"title": {" run "}}, "title")
	require.NotNil(t, v)
	assert.Equal(t, "run", *v)
}
