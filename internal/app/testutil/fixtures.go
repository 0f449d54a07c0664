package testutil

import (
	"bytes"

	"cn7-transcriptor/internal/app/model"
)

// SampleTranscript is a transcript in the expected output layout.
const SampleTranscript = "[00:00] Falante A: Olá."

// LongTranscript spans several speaker turns.
const LongTranscript = `[00:00] Falante A: Olá a todos e bem-vindos ao nosso canal. Hoje, vamos mergulhar nas novas funcionalidades da API.
[00:45] Falante B: Exatamente. Isso significa que a necessidade de pré-processar arquivos é reduzida.
[01:10] Falante A: Concordo plenamente. Vamos ver os exemplos.`

// ClipMP3 returns a 2 MB audio/mp3 file named clip.mp3.
func ClipMP3() *model.MediaFile {
	return model.NewMediaFile("clip.mp3", "audio/mp3", Payload(2*1024*1024))
}

// TalkMP4 returns a small video/mp4 file named talk.mp4.
func TalkMP4() *model.MediaFile {
	return model.NewMediaFile("talk.mp4", "video/mp4", Payload(64*1024))
}

// Payload returns size bytes of deterministic filler.
func Payload(size int) []byte {
	return bytes.Repeat([]byte{0xA5}, size)
}
