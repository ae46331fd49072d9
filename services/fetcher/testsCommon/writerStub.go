package testsCommon

// WriterStub -
type WriterStub struct {
	WriteHandler func(filename string, contents []byte) (string, error)
}

// Write -
func (stub *WriterStub) Write(filename string, contents []byte) (string, error) {
	if stub.WriteHandler != nil {
		return stub.WriteHandler(filename, contents)
	}

	return filename, nil
}

// IsInterfaceNil -
func (stub *WriterStub) IsInterfaceNil() bool {
	return stub == nil
}
