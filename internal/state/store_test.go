package state

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projex/internal/mockdata"
	"projex/internal/models"
)

func newTestStore() *Store {
	return NewStore(Initial(nil), zerolog.Nop())
}

func TestStore_StateIsACopy(t *testing.T) {
	st := newTestStore()
	st.Dispatch(TasksFetchSucceeded{Tasks: mockdata.Tasks()})

	snap := st.State()
	snap.Tasks.Tasks[0].Status = models.TaskBacklog

	assert.Equal(t, models.TaskDone, st.State().Tasks.Tasks[0].Status)
}

func TestStore_ApplyNilEventIsNoop(t *testing.T) {
	st := newTestStore()
	calls := 0
	st.Subscribe(func(State) { calls++ })

	applied := st.Apply(func(State) Event { return nil })

	assert.False(t, applied)
	assert.Zero(t, calls)
}

func TestStore_Subscribe(t *testing.T) {
	st := newTestStore()
	var got []string
	unsubscribe := st.Subscribe(func(s State) { got = append(got, s.Team.SearchQuery) })

	st.Dispatch(TeamSearchSet{Query: "a"})
	st.Dispatch(TeamSearchSet{Query: "ab"})
	unsubscribe()
	st.Dispatch(TeamSearchSet{Query: "abc"})

	assert.Equal(t, []string{"a", "ab"}, got)
	assert.Equal(t, "abc", st.State().Team.SearchQuery)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	st := newTestStore()
	st.Dispatch(TasksFetchSucceeded{Tasks: mockdata.Tasks()})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := models.TaskStatuses[i%len(models.TaskStatuses)]
			st.Dispatch(TaskStatusUpdated{TaskID: "task-002", Status: status, At: time.Unix(int64(i), 0)})
			st.Dispatch(TaskSearchSet{Query: "q"})
		}(i)
	}
	wg.Wait()

	s := st.State()
	require.Len(t, s.Tasks.Tasks, 12)
	assert.True(t, s.Tasks.Tasks[1].Status.Valid())
	assert.Equal(t, "q", s.Tasks.SearchQuery)
}

// Overlapping logins are not serialized: whichever resolves last decides the
// signed-in user.
func TestStore_OverlappingLoginsLastResolvedWins(t *testing.T) {
	st := newTestStore()
	first := &models.User{ID: "usr-a"}
	second := &models.User{ID: "usr-b"}

	st.Dispatch(AuthRequested{Op: OpLogin})
	st.Dispatch(AuthRequested{Op: OpLogin})
	st.Dispatch(AuthSucceeded{Op: OpLogin, User: second})
	st.Dispatch(AuthSucceeded{Op: OpLogin, User: first})

	auth := st.State().Auth
	require.NotNil(t, auth.User)
	assert.Equal(t, "usr-a", auth.User.ID)
	assert.False(t, auth.IsLoading)
}
