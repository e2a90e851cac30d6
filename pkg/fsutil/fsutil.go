package fsutil

import (
	"context"
	"os"
	"syscall"
	"time"

	"github.com/linode/linode-fsutil/pkg/filesystem"
	filesystemstats "github.com/linode/linode-fsutil/pkg/filesystem-stats"
	"github.com/linode/linode-fsutil/pkg/logger"
	"github.com/linode/linode-fsutil/pkg/observability"
)

// dirPermission is the mode used for directories created by EnsureDir.
const dirPermission = os.FileMode(0755)

// Utils runs the filesystem operations against an injected file system and
// statfs implementation. It holds no state between calls and is safe for
// concurrent use.
type Utils struct {
	fs      filesystem.FileSystem
	statter filesystemstats.FilesystemStatter
}

// NewUtils returns a Utils that uses fs for stat and mkdir and statter for
// volume statistics.
func NewUtils(fs filesystem.FileSystem, statter filesystemstats.FilesystemStatter) *Utils {
	return &Utils{
		fs:      fs,
		statter: statter,
	}
}

// NewOSUtils returns a Utils backed by the os package and statfs(2).
func NewOSUtils() *Utils {
	return NewUtils(filesystem.NewFileSystem(), filesystemstats.NewFilesystemStatter())
}

// GetFsStats returns the statistics of the filesystem containing path, with
// AvailableMB filled in. Errors from statfs are returned unchanged.
func (u *Utils) GetFsStats(ctx context.Context, path string) (stats *filesystemstats.VolumeStats, err error) {
	p, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	functionStartTime := time.Now()
	log, _ := logger.GetLogger(ctx)
	log, done := logger.WithMethod(log, "GetFsStats")
	defer done()

	_, span := observability.StartFunctionSpan(ctx)
	defer func() {
		observability.TraceFunctionData(span, "GetFsStats", map[string]string{"path": p}, err)
		observability.RecordMetrics(observability.GetFsStatsTotal, observability.GetFsStatsDuration, observability.Status(err), functionStartTime)
	}()

	log.V(4).Info("Entering GetFsStats", "path", p)

	stats, err = u.statter.Statfs(p)
	if err != nil {
		return nil, err
	}
	stats.AvailableMB = filesystemstats.AvailableMB(stats.BlockSize, stats.BlocksAvailable)
	observability.VolumeAvailableMB.WithLabelValues(p).Set(float64(stats.AvailableMB))

	log.V(4).Info("Exiting GetFsStats", "availableMB", stats.AvailableMB)
	return stats, nil
}

// EnsureDir makes sure path exists and is a directory, and returns its stat.
//
// A missing path is created, along with any missing parents, and stat'ed
// again. A path that exists but is not a directory yields an *ErrnoError with
// code ENOTDIR. Any other error is returned unchanged.
//
// Creation and the following stat are not atomic with respect to other
// processes working on the same path.
func (u *Utils) EnsureDir(ctx context.Context, path string) (dir *DirStat, err error) {
	p, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	functionStartTime := time.Now()
	log, _ := logger.GetLogger(ctx)
	log, done := logger.WithMethod(log, "EnsureDir")
	defer done()

	_, span := observability.StartFunctionSpan(ctx)
	defer func() {
		observability.TraceFunctionData(span, "EnsureDir", map[string]string{"path": p}, err)
		observability.RecordMetrics(observability.EnsureDirTotal, observability.EnsureDirDuration, observability.Status(err), functionStartTime)
	}()

	log.V(4).Info("Entering EnsureDir", "path", p)

	info, err := u.fs.Stat(p)
	switch {
	case err == nil && info.IsDir():
		log.V(4).Info("Exiting EnsureDir", "created", false)
		return &DirStat{FileInfo: info, Path: p}, nil
	case err == nil:
		return nil, newErrnoError(syscall.ENOTDIR, "stat", p)
	case !u.fs.IsNotExist(err):
		return nil, err
	}

	log.V(4).Info("Creating directory", "path", p, "mode", dirPermission)
	if err = u.fs.MkdirAll(p, dirPermission); err != nil {
		return nil, err
	}
	observability.DirectoriesCreatedTotal.Inc()

	if info, err = u.fs.Stat(p); err != nil {
		return nil, err
	}

	log.V(4).Info("Exiting EnsureDir", "created", true)
	return &DirStat{FileInfo: info, Path: p}, nil
}

// EnsureAndStat runs EnsureDir on path and then GetFsStats on the same path,
// returning the directory stat with Statvfs set. When EnsureDir fails the
// filesystem is not queried.
func (u *Utils) EnsureAndStat(ctx context.Context, path string) (dir *DirStat, err error) {
	p, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	functionStartTime := time.Now()
	log, ctx := logger.GetLogger(ctx)
	log, done := logger.WithMethod(log, "EnsureAndStat")
	defer done()

	ctx, span := observability.StartFunctionSpan(ctx)
	defer func() {
		observability.TraceFunctionData(span, "EnsureAndStat", map[string]string{"path": p}, err)
		observability.RecordMetrics(observability.EnsureAndStatTotal, observability.EnsureAndStatDuration, observability.Status(err), functionStartTime)
	}()

	log.V(4).Info("Entering EnsureAndStat", "path", p)

	dir, err = u.EnsureDir(ctx, p)
	if err != nil {
		return nil, err
	}

	stats, err := u.GetFsStats(ctx, p)
	if err != nil {
		return nil, err
	}
	dir.Statvfs = stats

	log.V(4).Info("Exiting EnsureAndStat")
	return dir, nil
}

// GetFsStatsAsync starts GetFsStats on its own goroutine. An empty path is
// rejected immediately and no goroutine is started.
func (u *Utils) GetFsStatsAsync(ctx context.Context, path string) (*Result[*filesystemstats.VolumeStats], error) {
	if _, err := normalizePath(path); err != nil {
		return nil, err
	}
	return goSettle(func() (*filesystemstats.VolumeStats, error) {
		return u.GetFsStats(ctx, path)
	}), nil
}

// EnsureDirAsync starts EnsureDir on its own goroutine. An empty path is
// rejected immediately and no goroutine is started.
func (u *Utils) EnsureDirAsync(ctx context.Context, path string) (*Result[*DirStat], error) {
	if _, err := normalizePath(path); err != nil {
		return nil, err
	}
	return goSettle(func() (*DirStat, error) {
		return u.EnsureDir(ctx, path)
	}), nil
}

// EnsureAndStatAsync starts EnsureAndStat on its own goroutine. An empty path
// is rejected immediately and no goroutine is started.
func (u *Utils) EnsureAndStatAsync(ctx context.Context, path string) (*Result[*DirStat], error) {
	if _, err := normalizePath(path); err != nil {
		return nil, err
	}
	return goSettle(func() (*DirStat, error) {
		return u.EnsureAndStat(ctx, path)
	}), nil
}

var osUtils = NewOSUtils()

// GetFsStats calls [Utils.GetFsStats] using the OS implementations.
func GetFsStats(ctx context.Context, path string) (*filesystemstats.VolumeStats, error) {
	return osUtils.GetFsStats(ctx, path)
}

// EnsureDir calls [Utils.EnsureDir] using the OS implementations.
func EnsureDir(ctx context.Context, path string) (*DirStat, error) {
	return osUtils.EnsureDir(ctx, path)
}

// EnsureAndStat calls [Utils.EnsureAndStat] using the OS implementations.
func EnsureAndStat(ctx context.Context, path string) (*DirStat, error) {
	return osUtils.EnsureAndStat(ctx, path)
}
