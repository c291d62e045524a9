// Package testutil provides shared helpers for tests that need external
// infrastructure (Redis) or common fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func requireRedis() bool { return envBool("TEST_REQUIRE_REDIS") || envBool("TEST_REQUIRE_INFRA") }

// redisAddr finds a reachable Redis for tests. REDIS_ADDR wins when set;
// otherwise the usual local addresses are probed.
func redisAddr(t testing.TB) (string, bool) {
	t.Helper()

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr, ping(t, addr)
	}
	for _, addr := range []string{"redis:6379", "localhost:6379"} {
		if ping(t, addr) {
			return addr, true
		}
	}
	return "localhost:6379", false
}

func ping(t testing.TB, addr string) bool {
	t.Helper()

	c := redis.NewClient(&redis.Options{Addr: addr})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		t.Logf("redis not available at %s: %v", addr, err)
		return false
	}
	return true
}

// lockTestDB reserves a Redis DB index so packages testing in parallel don't
// flush each other's data. Reservations live in DB 0 where FlushDB on the
// chosen test DB can't remove them.
func lockTestDB(t testing.TB, addr string) int {
	t.Helper()

	meta := redis.NewClient(&redis.Options{Addr: addr, DB: 0})
	t.Cleanup(func() { meta.Close() })

	for i := 1; i <= 15; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		key := fmt.Sprintf("posweb:testutil:db_lock:%d", i)
		val := fmt.Sprintf("%d:%d", os.Getpid(), time.Now().UnixNano())
		ok, err := meta.SetNX(ctx, key, val, 30*time.Minute).Result()
		cancel()
		if err != nil || !ok {
			continue
		}

		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			meta.Del(ctx, key)
		})
		return i
	}

	t.Logf("no free redis test DB at %s, falling back to DB 1", addr)
	return 1
}

// SetupTestRedis returns a Redis client bound to a dedicated test DB, flushed
// clean. The test is skipped when no Redis is reachable, unless
// TEST_REQUIRE_REDIS or TEST_REQUIRE_INFRA demands one.
func SetupTestRedis(t testing.TB) *redis.Client {
	t.Helper()

	addr, ok := redisAddr(t)
	if !ok {
		if requireRedis() {
			t.Fatal("redis not available for testing")
		}
		t.Skip("redis not available for testing")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: lockTestDB(t, addr)})
	t.Cleanup(func() { client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client.FlushDB(ctx)

	return client
}
