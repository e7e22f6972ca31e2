// Package dicom writes multi-frame grayscale images as DICOM Part 10 files in the Explicit VR
// Little Endian transfer syntax.
//
// The high level API is Write and WriteFile, which encode an ImageSource as a Secondary Capture
// Image: the preamble and DICM signature, a fixed set of File Meta Information and Data Set
// elements built by BuildDataSet, and a Pixel Data element holding every frame. The low level API
// consists of WriteElement and WriteElementHeader, which encode single DataElements and can be
// used to stream element values that are not buffered in memory.
package dicom
