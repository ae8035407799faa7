// Package html renders view trees as HTML documents and routes clicks on
// their regions back to the callbacks that built them.
package html

import (
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/view"
)

const (
	defaultCapacity = 1024
	defaultTTL      = 30 * time.Minute
)

// Builder - produces the tree for a mount once its id is known.
type Builder func(mountID string) *view.Node

// Mount - one rendered instance of a page. Mounts share no state.
type Mount struct {
	ID   string
	Root *view.Node

	mu      sync.Mutex
	regions map[string]*view.Node
}

// Options - tune the mount registry and the URLs regions post to.
// OnRelease, when set, is called in its own goroutine for every mount that
// expires or is evicted.
type Options struct {
	Capacity  int
	TTL       time.Duration
	BasePath  string
	OnRelease func(mountID string)
}

type Host struct {
	logger   *slog.Logger
	basePath string
	mounts   *expirable.LRU[string, *Mount]
}

func NewHost(logger *slog.Logger, opts Options) *Host {
	if opts.Capacity <= 0 {
		opts.Capacity = defaultCapacity
	}

	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}

	log := logger.With("component", "html-host")

	onEvict := func(id string, _ *Mount) {
		log.Debug("mount released", "mount_id", id)

		// runs under the registry lock
		if opts.OnRelease != nil {
			go opts.OnRelease(id)
		}
	}

	return &Host{
		logger:   log,
		basePath: opts.BasePath,
		mounts:   expirable.NewLRU[string, *Mount](opts.Capacity, onEvict, opts.TTL),
	}
}

// Mount - builds a fresh tree under a new id and registers its regions.
func (that *Host) Mount(build Builder) *Mount {
	id := uuid.NewString()
	root := build(id)

	mount := &Mount{
		ID:      id,
		Root:    root,
		regions: make(map[string]*view.Node),
	}

	for index, region := range view.Regions(root) {
		if region.Interactive() {
			mount.regions[strconv.Itoa(index)] = region
		}
	}

	that.mounts.Add(id, mount)
	that.logger.Debug("mounted", "mount_id", id, "regions", len(mount.regions))

	return mount
}

// Get - looks up a live mount.
func (that *Host) Get(mountID string) (*Mount, error) {
	mount, ok := that.mounts.Get(mountID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrMountNotFound, mountID)
	}

	return mount, nil
}

// Activate - runs the callback of one region exactly once.
func (that *Host) Activate(mountID, regionID string) error {
	mount, err := that.Get(mountID)
	if err != nil {
		return err
	}

	return mount.Activate(regionID)
}

// Len - number of live mounts.
func (that *Host) Len() int {
	return that.mounts.Len()
}

// MountPath - where a mount is re-rendered.
func (that *Host) MountPath(mountID string) string {
	return path.Join("/", that.basePath, "mounts", mountID)
}

// ActionPath - where a region of a mount posts its activation.
func (that *Host) ActionPath(mountID, regionID string) string {
	return path.Join(that.MountPath(mountID), "regions", regionID)
}

func (that *Mount) Activate(regionID string) error {
	region, ok := that.regions[regionID]
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrRegionNotFound, regionID)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	region.OnActivate()

	return nil
}
