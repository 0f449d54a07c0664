// Package testutil provides test doubles and fixtures shared by the
// cn7-transcriptor packages.
//
//   - MockTranscriber: testify mock of api.Transcriber standing in for the
//     remote model, with optional blocking to hold a call in flight
//   - RecordingPreviewer: preview manager wrapper that counts acquire and
//     release calls so tests can assert every handle is released once
//   - Fixtures: sample media files and transcripts
//
// # Usage
//
//	transcriber := testutil.NewMockTranscriber()
//	transcriber.On("Transcribe", mock.Anything, mock.Anything).
//	    Return("[00:00] Falante A: Olá.", nil)
//
//	previews := testutil.NewRecordingPreviewer()
//	s := session.New(transcriber, previews, nil)
//	...
//	previews.AssertBalanced(t)
package testutil
