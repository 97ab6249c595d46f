// Package httpstore implements the member repository port against the remote
// synchronized store's REST surface (point-get of one key under the root
// collection, Firebase-RTDB style: GET {base}/{collection}/{id}.json).
package httpstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fitpoint-gym/member-client/internal/domain"
	"github.com/fitpoint-gym/member-client/internal/ports/out/memberrepo"
	"github.com/fitpoint-gym/member-client/internal/record"
)

// Config wires a Client.
type Config struct {
	// BaseURL is the store root, without trailing slash.
	BaseURL string
	// Collection is the root collection member records live under.
	Collection string
	// ReplicaDir holds pinned replicas; empty disables offline fallback.
	ReplicaDir string
	// InstanceID identifies this client install to the store. Optional.
	InstanceID string
	// Timeout bounds each fetch round trip.
	Timeout time.Duration
}

// Client fetches member records from the remote store.
//
// Pin marks a key so its last successfully fetched payload is retained in a
// local replica file. When a fetch fails at the transport level the client
// makes exactly one fallback read of that replica before reporting
// ErrUnavailable; a definitive miss from the store is never masked by stale
// replica data.
type Client struct {
	baseURL    string
	collection string
	instanceID string
	httpc      *http.Client
	replicas   *replicaCache

	mu     sync.Mutex
	pinned map[domain.MemberID]struct{}
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	collection := cfg.Collection
	if collection == "" {
		collection = "Customers"
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		collection: collection,
		instanceID: cfg.InstanceID,
		httpc:      &http.Client{Timeout: timeout},
		replicas:   newReplicaCache(cfg.ReplicaDir),
		pinned:     make(map[domain.MemberID]struct{}),
	}
}

func (c *Client) Pin(ctx context.Context, id domain.MemberID) {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pinned[id] = struct{}{}
}

func (c *Client) isPinned(id domain.MemberID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pinned[id]
	return ok
}

// errNoRecord distinguishes a definitive "key absent" answer from a
// transport failure inside get.
var errNoRecord = errors.New("no record at key")

func (c *Client) FetchByID(ctx context.Context, id domain.MemberID) (record.Member, error) {
	body, err := c.get(ctx, id)
	switch {
	case err == nil:
		m, derr := DecodeMember(body)
		if derr != nil {
			slog.Debug("record undecodable by any decoder", "member_id", id, "error", derr)
			return record.Member{}, memberrepo.ErrNotFound
		}
		if c.isPinned(id) {
			c.replicas.store(id, body)
		}
		return m, nil

	case errors.Is(err, errNoRecord):
		return record.Member{}, memberrepo.ErrNotFound

	default:
		// Transport failure: one retry against the pinned replica.
		if cached, ok := c.replicas.load(id); ok && c.isPinned(id) {
			if m, derr := DecodeMember(cached); derr == nil {
				slog.Debug("store unreachable, serving pinned replica", "member_id", id)
				return m, nil
			}
		}
		slog.Debug("store unreachable and no usable replica", "member_id", id, "error", err)
		return record.Member{}, memberrepo.ErrUnavailable
	}
}

func (c *Client) get(ctx context.Context, id domain.MemberID) ([]byte, error) {
	u := fmt.Sprintf("%s/%s/%s.json", c.baseURL, url.PathEscape(c.collection), url.PathEscape(string(id)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.instanceID != "" {
		req.Header.Set("X-Client-Instance", c.instanceID)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", u, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errNoRecord
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetching %s: unexpected status %d", u, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRecordSize))
	if err != nil {
		return nil, fmt.Errorf("reading record body: %w", err)
	}
	// The store answers "null" for absent keys.
	if isNullPayload(body) {
		return nil, errNoRecord
	}
	return body, nil
}

// maxRecordSize caps a single record payload; real records are a few KB.
const maxRecordSize = 1 << 20

func isNullPayload(body []byte) bool {
	t := bytes.TrimSpace(body)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
