// Package redis holds the Redis client and the read-through cache that
// decorates the victory repository. Victories never change once recorded,
// so entries only leave the cache by TTL or when their party's victories
// are deleted.
package redis
