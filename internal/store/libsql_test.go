package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"resultsdb/internal/components/chrono"
	"resultsdb/internal/db"
	"resultsdb/internal/results"
	configlibsql "resultsdb/lib/configutil/libsql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestLibsqlServer(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*2)
	defer cancel()

	// suppress logging
	testcontainers.Logger = log.New(io.Discard, "", 0)

	server, err := testcontainers.GenericContainer(
		ctx,
		testcontainers.GenericContainerRequest{
			Started: true,
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "ghcr.io/tursodatabase/libsql-server:latest",
				ExposedPorts: []string{"8080/tcp"},
				WaitingFor:   wait.ForHTTP("/health").WithPort("8080/tcp"),
			},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		err := server.Terminate(context.Background())
		if err != nil {
			t.Fatal(err)
		}
	}()

	endpoint, err := server.PortEndpoint(ctx, "8080/tcp", "http")
	if err != nil {
		t.Fatal(err)
	}

	database, err := configlibsql.Struct{Url: endpoint}.OpenDB()
	if err != nil {
		t.Fatal(err)
	}
	defer database.Close()

	err = db.Setup(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	err = db.Setup(ctx, database)
	require.True(t, errors.Is(err, db.ErrAlreadySetup), err)

	store := NewStore(database, chrono.FixedImpl{Time: time.Unix(1700000000, 0)})
	res := sampleResult("1210311101", "6", "8.45")

	err = store.Save(ctx, []results.Result{res}, ModeError)
	if err != nil {
		t.Fatal(err)
	}
	err = store.Save(ctx, []results.Result{res}, ModeError)
	require.True(t, errors.Is(err, ErrDuplicate), fmt.Sprint(err))
	err = store.Save(ctx, []results.Result{res}, ModeReplace)
	if err != nil {
		t.Fatal(err)
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, Counts{Students: 1, SubjectResults: 2, GpaRecords: 1}, counts)
}
