// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package analyze

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mta/internal/testutil"
)

type memoryCache struct {
	entries map[string]string
	failGet bool
	failSet bool
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	if c.failGet {
		return "", false, errors.New("cache down")
	}
	text, ok := c.entries[key]
	return text, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key, text string) error {
	if c.failSet {
		return errors.New("cache down")
	}
	c.entries[key] = text
	return nil
}

/*
TestCachedRecognizer_Hit recognizes a page once and serves repeats from the cache.
*/
func TestCachedRecognizer_Hit(t *testing.T) {
	next := &echoRecognizer{}
	cache := &memoryCache{entries: map[string]string{}}
	recognizer := NewCachedRecognizer(next, cache, testutil.Logger())
	ctx := context.Background()

	for range 3 {
		text, err := recognizer.Recognize(ctx, []byte("猫"))
		require.NoError(t, err)
		assert.Equal(t, "猫", text)
	}

	assert.Equal(t, int32(1), next.calls.Load())
	assert.Equal(t, "猫", cache.entries[Checksum([]byte("猫"))])
}

func TestCachedRecognizer_CacheFailure(t *testing.T) {
	next := &echoRecognizer{}
	cache := &memoryCache{entries: map[string]string{}, failGet: true, failSet: true}
	recognizer := NewCachedRecognizer(next, cache, testutil.Logger())

	text, err := recognizer.Recognize(context.Background(), []byte("犬"))
	require.NoError(t, err)
	assert.Equal(t, "犬", text)
	assert.Equal(t, int32(1), next.calls.Load())
}

func TestCachedRecognizer_RecognizeFailureNotCached(t *testing.T) {
	next := &echoRecognizer{fail: "bad"}
	cache := &memoryCache{entries: map[string]string{}}
	recognizer := NewCachedRecognizer(next, cache, testutil.Logger())

	_, err := recognizer.Recognize(context.Background(), []byte("bad"))
	require.Error(t, err)
	assert.Empty(t, cache.entries)
}

func TestChecksum(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Checksum(nil),
	)
}
