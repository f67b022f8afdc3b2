// Package redis persists executed swap transactions. Each record is a JSON
// blob under its own key, with a per-user sorted set scored by creation time
// serving the newest-first history reads.
package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gosyncswap/types"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// most recent entries returned by UserTransactions
const historyLimit = 50

type Store struct {
	pool *redis.Pool
}

func timeoutDialOptions() []redis.DialOption {
	return []redis.DialOption{
		redis.DialConnectTimeout(5 * time.Second),
		redis.DialReadTimeout(5 * time.Second),
		redis.DialWriteTimeout(5 * time.Second),
	}
}

func NewStore(host string, port int) *Store {
	redisAddr := fmt.Sprintf("%s:%d", host, port)
	return &Store{
		pool: &redis.Pool{
			MaxIdle: 5,
			Dial:    func() (redis.Conn, error) { return redis.Dial("tcp", redisAddr, timeoutDialOptions()...) },
		},
	}
}

func (s *Store) Ping() error {
	conn := s.pool.Get()
	defer conn.Close()

	_, err := conn.Do("PING")
	return err
}

func recordKey(id string) string {
	return fmt.Sprintf("swaptx:%s", id)
}

func userKey(address string) string {
	return fmt.Sprintf("swaptx:user:%s", strings.ToLower(address))
}

// SaveTransaction inserts a transaction record. Records are never updated in
// place. The user index is written last: a record whose index write failed is
// invisible to reads, so a half-finished insert leaves no observable state.
func (s *Store) SaveTransaction(tx *types.Transaction) error {
	conn := s.pool.Get()
	defer conn.Close()

	if tx == nil {
		return errors.New("null object to store")
	}

	if tx.Status == "" {
		return errors.New("transaction cannot have empty status")
	}

	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}

	txJSON, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("cannot marshal transaction to JSON: %s", err.Error())
	}

	_, err = conn.Do("SET", recordKey(tx.ID), txJSON)
	if err != nil {
		log.Error().Err(err).Msg("redis SET")
		return err
	}

	_, err = conn.Do("ZADD", userKey(tx.UserAddress), tx.CreatedAt.UnixNano(), recordKey(tx.ID))
	if err != nil {
		log.Error().Err(err).Msg("redis ZADD")
		return err
	}

	return nil
}

// UserTransactions returns the caller's records newest first, capped at 50.
func (s *Store) UserTransactions(address string) ([]*types.Transaction, error) {
	conn := s.pool.Get()
	defer conn.Close()

	keys, err := redis.Strings(conn.Do("ZREVRANGE", userKey(address), 0, historyLimit-1))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, nil
		}
		log.Error().Err(err).Msg("redis ZREVRANGE")
		return nil, err
	}

	txs := make([]*types.Transaction, 0, len(keys))
	for _, key := range keys {
		raw, err := redis.Bytes(conn.Do("GET", key))
		if errors.Is(err, redis.ErrNil) {
			// index entry outlived its record, skip
			continue
		}
		if err != nil {
			log.Error().Err(err).Msg("redis GET")
			return nil, err
		}

		var tx types.Transaction
		if err := json.Unmarshal(raw, &tx); err != nil {
			return nil, err
		}
		txs = append(txs, &tx)
	}

	return txs, nil
}
