package domain

// Config is the top-level configuration threaded through recheck: the
// source roots the parser layer watches, the working-set size used to size
// NoCache tables, and the fixed-chunk-count parameters passed to every
// collected_map_reduce call.
type Config struct {
	ProjectRoot string   `yaml:"project_root"`
	SourceRoots []string `yaml:"source_roots"`

	// Parallelism bounds the scheduler's worker pool. Zero means "let the
	// scheduler adapter pick a default" (typically runtime.NumCPU()).
	Parallelism int `yaml:"parallelism"`

	// NoCacheTableSize bounds the LRU size used by layers configured without
	// a full in-memory cache.
	NoCacheTableSize int `yaml:"no_cache_table_size"`

	Chunking ChunkingConfig `yaml:"chunking"`
}

// ChunkingConfig mirrors ports.Policy so it can be expressed in a config
// file and converted at wiring time.
type ChunkingConfig struct {
	MinChunksPerWorker       int `yaml:"min_chunks_per_worker"`
	MinChunkSize             int `yaml:"min_chunk_size"`
	PreferredChunksPerWorker int `yaml:"preferred_chunks_per_worker"`
}

// DefaultConfig returns the fixed-chunk-count defaults named explicitly: one
// chunk per worker at minimum, chunks never smaller than 100 items, five
// chunks per worker once the input is large enough.
func DefaultConfig() Config {
	return Config{
		Parallelism:      0,
		NoCacheTableSize: 4096,
		Chunking: ChunkingConfig{
			MinChunksPerWorker:       1,
			MinChunkSize:             100,
			PreferredChunksPerWorker: 5,
		},
	}
}
