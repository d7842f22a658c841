package middlewares

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	written []kafka.Message
	err     error
	closed  bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestAfterCommit_RunsImmediatelyOutsideTx(t *testing.T) {
	ran := false
	AfterCommit(context.Background(), func(context.Context) { ran = true })
	assert.True(t, ran)
}

func TestCommitAwareWriter_OutsideTx(t *testing.T) {
	next := &recordingWriter{}
	w := NewCommitAwareWriter(next)

	require.NoError(t, w.WriteMessages(context.Background(), kafka.Message{Key: []byte("1")}))
	assert.Len(t, next.written, 1)

	next.err = errors.New("broker down")
	assert.EqualError(t, w.WriteMessages(context.Background(), kafka.Message{}), "broker down")

	require.NoError(t, w.Close())
	assert.True(t, next.closed)
}

func TestCommitAwareWriter_PublishesAfterCommit(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	next := &recordingWriter{}
	w := NewCommitAwareWriter(next)

	handler := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.NoError(t, w.WriteMessages(r.Context(), kafka.Message{Key: []byte("7")}))
		assert.Empty(t, next.written)
		rw.WriteHeader(http.StatusCreated)
	})

	rr := httptest.NewRecorder()
	TxMiddleware(sqlxDB)(handler).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, next.written, 1)
	assert.Equal(t, []byte("7"), next.written[0].Key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitAwareWriter_DropsOnRollback(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	next := &recordingWriter{}
	w := NewCommitAwareWriter(next)

	handler := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.NoError(t, w.WriteMessages(r.Context(), kafka.Message{Key: []byte("7")}))
		rw.WriteHeader(http.StatusConflict)
	})

	rr := httptest.NewRecorder()
	TxMiddleware(sqlxDB)(handler).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Empty(t, next.written)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitAwareWriter_DropsOnCommitError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	next := &recordingWriter{}
	w := NewCommitAwareWriter(next)

	handler := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.NoError(t, w.WriteMessages(r.Context(), kafka.Message{Key: []byte("7")}))
		rw.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	TxMiddleware(sqlxDB)(handler).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, next.written)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitAwareWriter_PublishFailureAfterCommitKeepsResponse(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	next := &recordingWriter{err: errors.New("broker down")}
	w := NewCommitAwareWriter(next)

	handler := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.NoError(t, w.WriteMessages(r.Context(), kafka.Message{}))
		rw.WriteHeader(http.StatusOK)
		rw.Write([]byte(`{"message":"ok"}`))
	})

	rr := httptest.NewRecorder()
	TxMiddleware(sqlxDB)(handler).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"message":"ok"}`, rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
