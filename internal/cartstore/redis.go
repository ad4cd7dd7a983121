// Package cartstore persists per-customer carts in Redis so the HTTP
// service stays stateless across requests. Entries are menu item references;
// the catalog resolves them back to full records on read.
package cartstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix = "cart:"
	cartTTL       = 24 * time.Hour
)

type Entry struct {
	RestaurantID string
	ItemID       string
}

type Store struct {
	client *redis.Client
}

func New(client *redis.Client) *Store { return &Store{client: client} }

func key(customer string) string { return cartKeyPrefix + customer }

func encode(e Entry) string { return e.RestaurantID + "|" + e.ItemID }

func decode(s string) (Entry, error) {
	rest, item, ok := strings.Cut(s, "|")
	if !ok {
		return Entry{}, fmt.Errorf("malformed cart entry %q", s)
	}
	return Entry{RestaurantID: rest, ItemID: item}, nil
}

// Add appends one item reference to the customer's cart.
func (s *Store) Add(ctx context.Context, customer string, e Entry) error {
	k := key(customer)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, k, encode(e))
	pipe.Expire(ctx, k, cartTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// Remove drops the first matching reference and reports whether one existed.
func (s *Store) Remove(ctx context.Context, customer string, e Entry) (bool, error) {
	n, err := s.client.LRem(ctx, key(customer), 1, encode(e)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Entries returns the cart contents in insertion order.
func (s *Store) Entries(ctx context.Context, customer string) ([]Entry, error) {
	vals, err := s.client.LRange(ctx, key(customer), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(vals))
	for _, v := range vals {
		e, err := decode(v)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Store) Clear(ctx context.Context, customer string) error {
	return s.client.Del(ctx, key(customer)).Err()
}
