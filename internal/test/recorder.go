package test

import (
	"encoding/json"
	"net/http/httptest"
)

type Recorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

func (r *Recorder[T]) Scan() (Result[T], error) {
	var res Result[T]
	err := json.NewDecoder(r.Body).Decode(&res)
	return res, err
}

func (r *Recorder[T]) MustScan() Result[T] {
	res, err := r.Scan()
	if err != nil {
		panic(err)
	}
	return res
}
