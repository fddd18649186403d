package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	pb "github.com/syncforge/core/pkg/types/pb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Client is a thin typed wrapper around a Firestore client. Each accessor
// below returns a Collection bound to the converter pair for its document
// type, so callers never touch map[string]interface{} directly except when
// issuing partial Update()s.
type Client struct {
	raw *firestore.Client
}

func NewClient(raw *firestore.Client) *Client {
	return &Client{raw: raw}
}

// Doc is a single typed document reference.
type Doc[T any] struct {
	ref     *firestore.DocumentRef
	toMap   func(T) map[string]interface{}
	fromMap func(map[string]interface{}) T
}

func (d *Doc[T]) Get(ctx context.Context) (T, error) {
	var zero T
	snap, err := d.ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return zero, nil
		}
		return zero, err
	}
	return d.fromMap(snap.Data()), nil
}

func (d *Doc[T]) Set(ctx context.Context, v T) error {
	_, err := d.ref.Set(ctx, d.toMap(v))
	return err
}

func (d *Doc[T]) Update(ctx context.Context, data map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(data))
	for path, value := range data {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	_, err := d.ref.Update(ctx, updates)
	return err
}

// Collection is a typed Firestore collection.
type Collection[T any] struct {
	ref     *firestore.CollectionRef
	toMap   func(T) map[string]interface{}
	fromMap func(map[string]interface{}) T
}

func (c *Collection[T]) Doc(id string) *Doc[T] {
	return &Doc[T]{ref: c.ref.Doc(id), toMap: c.toMap, fromMap: c.fromMap}
}

func newCollection[T any](ref *firestore.CollectionRef, toMap func(T) map[string]interface{}, fromMap func(map[string]interface{}) T) *Collection[T] {
	return &Collection[T]{ref: ref, toMap: toMap, fromMap: fromMap}
}

func (c *Client) Users() *Collection[*pb.UserRecord] {
	return newCollection(c.raw.Collection("users"), UserToFirestore, FirestoreToUser)
}

func (c *Client) Executions() *Collection[*pb.ExecutionRecord] {
	return newCollection(c.raw.Collection("executions"), ExecutionToFirestore, FirestoreToExecution)
}

func (c *Client) PendingInputs() *Collection[*pb.PendingInput] {
	return newCollection(c.raw.Collection("pending_inputs"), PendingInputToFirestore, FirestoreToPendingInput)
}

func (c *Client) PipelineRuns() *Collection[*pb.PipelineRun] {
	return newCollection(c.raw.Collection("pipeline_runs"), PipelineRunToFirestore, FirestoreToPipelineRun)
}

// LedgerEntries holds one user's loop-prevention ledger rows, keyed by
// "<destination>:<destination_id>", under users/{userId}/uploaded_activities
// per the persisted state layout.
func (c *Client) LedgerEntries(userId string) *Collection[*pb.UploadedActivityRecord] {
	return newCollection(c.raw.Collection("users").Doc(userId).Collection("uploaded_activities"), UploadedActivityRecordToFirestore, FirestoreToUploadedActivityRecord)
}

func (c *Client) Counters(userId string) *Collection[*pb.Counter] {
	return newCollection(c.raw.Collection("users").Doc(userId).Collection("counters"), CounterToFirestore, FirestoreToCounter)
}

func (c *Client) Activities(userId string) *Collection[*pb.SynchronizedActivity] {
	return newCollection(c.raw.Collection("users").Doc(userId).Collection("activities"), SynchronizedActivityToFirestore, FirestoreToSynchronizedActivity)
}
