package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Documents.Dir == "" {
		cfg.Documents.Dir = "./data_files/documents"
	}
	if cfg.Chunk.Size == 0 {
		cfg.Chunk.Size = 500
	}
	if cfg.Chunk.Overlap == 0 {
		cfg.Chunk.Overlap = 50
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 4
	}
	if cfg.AI.EmbeddingModel == "" {
		cfg.AI.EmbeddingModel = "text-embedding-3-small"
	}
	if cfg.AI.EmbeddingDimensions == 0 {
		cfg.AI.EmbeddingDimensions = 1536
	}
	if cfg.AI.CompletionModel == "" {
		cfg.AI.CompletionModel = "gpt-4o-mini"
	}
	if cfg.OCR.Language == "" {
		cfg.OCR.Language = "hin"
	}
}
