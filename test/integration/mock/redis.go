//go:build integration

package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis

// RedisAddr starts (once) an in-process redis server and returns its address.
func RedisAddr() string {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = server
	})

	return redisServer.Addr()
}

// ClearRedis flushes all keys.
func ClearRedis() {
	if redisServer != nil {
		redisServer.FlushAll()
	}
}
