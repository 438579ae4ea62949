package pkg

import (
	"os"
	"path/filepath"
	"sync"
)

// CacheDir returns the directory for transient files such as profiles.
//
// It is the [Name] directory under [os.UserCacheDir], falling back to
// ~/.cache and then to the working directory.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string {
		dir, err := os.UserCacheDir()
		if err != nil {
			home, herr := os.UserHomeDir()
			if herr != nil {
				return "." + Name
			}

			dir = filepath.Join(home, ".cache")
		}

		return filepath.Join(dir, Name)
	},
)
