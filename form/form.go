package form

import (
	"iter"

	jsoniter "github.com/json-iterator/go"
)

type Data struct {
	Name     string `json:"name"`
	Filename string `json:"filename,omitempty"`
	Type     string `json:"type,omitempty"`
	// Charset is the charset the value was transmitted in. Value of a text field
	// is always decoded into UTF-8.
	Charset string `json:"charset,omitempty"`
	// Value holds text fields and files that weren't offloaded into a storage.
	Value string `json:"value,omitempty"`
	// Path is the key the file is stored by, if any.
	Path     string `json:"path,omitempty"`
	Size     int64  `json:"size"`
	Checksum string `json:"checksum,omitempty"`
	IsFile   bool   `json:"is_file"`
}

type Form []Data

// Name returns the first Data matching the name.
func (f Form) Name(name string) (Data, bool) {
	for data := range f.Names(name) {
		return data, true
	}

	return Data{}, false
}

// Names returns an iterator over all Data matching the name.
func (f Form) Names(name string) iter.Seq[Data] {
	return func(yield func(Data) bool) {
		for _, entry := range f {
			if entry.Name == name {
				if !yield(entry) {
					break
				}
			}
		}
	}
}

// File returns the first file matching the filename.
func (f Form) File(filename string) (Data, bool) {
	for data := range f.Files() {
		if data.Filename == filename {
			return data, true
		}
	}

	return Data{}, false
}

// Files returns an iterator over all the files.
func (f Form) Files() iter.Seq[Data] {
	return func(yield func(Data) bool) {
		for _, entry := range f {
			if entry.IsFile {
				if !yield(entry) {
					break
				}
			}
		}
	}
}

// JSON serializes the form.
func (f Form) JSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(f)
}
