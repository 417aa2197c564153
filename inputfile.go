// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import "encoding/json"

// InputFile is a file parameter of a Bot API method.
//
// It is either a reference Telegram resolves by itself (a file identifier of
// previously uploaded media, or an HTTP URL) or raw contents to upload. The
// reference forms are sent as JSON strings; raw contents switch the whole
// request to multipart/form-data.
type InputFile struct {
	ref  string
	name string
	data []byte
}

// FileID returns an InputFile referring to a file already stored on Telegram
// servers by its identifier.
func FileID(id string) *InputFile { return &InputFile{ref: id} }

// FileURL returns an InputFile referring to a file by an HTTP URL that
// Telegram will download itself.
func FileURL(url string) *InputFile { return &InputFile{ref: url} }

// Upload returns an InputFile that uploads the given contents under the given
// file name.
func Upload(name string, data []byte) *InputFile {
	return &InputFile{name: name, data: data}
}

func (f *InputFile) isUpload() bool { return f != nil && f.data != nil }

// MarshalJSON implements the [json.Marshaler] interface. Reference forms
// marshal as plain strings. Uploads have no string form: they are attached
// to the request as multipart file parts instead, so they marshal as null.
func (f *InputFile) MarshalJSON() ([]byte, error) {
	if f.isUpload() {
		return []byte("null"), nil
	}
	return json.Marshal(f.ref)
}
