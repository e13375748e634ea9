package ports

// Watcher monitors run inputs (the source table, the asset catalog tree) for
// changes so watch mode can schedule re-runs. The adapter (fsnotify) must
// filter out editor noise (.git, swap files, .DS_Store) before invoking
// onChange. Only one Watch call should be active per Watcher.
type Watcher interface {
	// Watch starts monitoring every given path: directories recursively,
	// plain files individually. onChange is called with the absolute path of
	// each changed input and may be invoked from any goroutine. Returns an
	// error if a path doesn't exist or permissions are insufficient.
	Watch(paths []string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
