// Package dataset assembles labelled feature matrices from whole
// multi-subject recordings.
//
// The builder runs one subject at a time through a fixed pipeline:
//
//   - validate the raw RR series and reject corrupt recordings
//   - drop artifact beats outside the physiological range
//   - window the cleaned series and extract one feature record per
//     window
//   - label every row from the subject's stress-index column
//   - attach the subject's demographic columns
//
// Subjects are independent, so the builder fans them out across a
// bounded worker pool; output rows keep the input subject order and,
// within a subject, window order. Every run is stamped with a fresh run
// id that appears in all log events.
//
// CSV helpers at the bottom of the package read raw one-column RR files
// and read or write the canonical 16-column matrix layout.
package dataset
