package mime

var Extension = map[string]MIME{
	".avif": AVIF,
	".css":  CSS,
	".csv":  CSV,
	".gif":  GIF,
	".htm":  HTML,
	".html": HTML,
	".jpeg": JPEG,
	".jpg":  JPEG,
	".js":   JS,
	".mjs":  JS,
	".json": JSON,
	".pdf":  PDF,
	".png":  PNG,
	".svg":  SVG,
	".txt":  Plain,
	".wasm": WASM,
	".webp": WEBP,
	".xml":  XML,
	".gz":   GZIP,
	".yaml": YAML,
	".yml":  YAML,
	".zip":  ZIP,
	".zstd": ZSTD,
	".ico":  ICO,
	".mp4":  MP4,
	".mp3":  MP3,
}
