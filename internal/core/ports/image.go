package ports

// ImageUpload carries an image received from a multipart request.
type ImageUpload struct {
	Name        string
	ContentType string
	Bytes       []byte
}

// ImageData is a raw image returned to the transport layer.
type ImageData struct {
	Name        string
	ContentType string
	Bytes       []byte
}
