package http

// WriteErrorForTest exposes the error mapper to the black box tests.
var WriteErrorForTest = writeError
