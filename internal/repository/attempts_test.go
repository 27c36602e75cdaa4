package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
	mock_repository "github.com/AngelaMMoreno/testbot.git/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttemptsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *AttemptsR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &AttemptsR{db: db}
}

func TestAttemptsR_CreateAttempt(t *testing.T) {
	t.Parallel()

	type args struct {
		userID int64
		quizID int64
		kind   models.AttemptKind
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		want    int64
		wantErr bool
	}{
		{
			name: "quiz attempt",
			args: args{userID: 1, quizID: 5, kind: models.KindQuiz},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(1), sql.NullInt64{Int64: 5, Valid: true}, models.KindQuiz).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*int64) = 42
						return nil
					})
			},
			want:    42,
			wantErr: false,
		},
		{
			name: "exam attempt stores null quiz",
			args: args{userID: 1, quizID: 0, kind: models.KindExam},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(1), sql.NullInt64{}, models.KindExam).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*int64) = 43
						return nil
					})
			},
			want:    43,
			wantErr: false,
		},
		{
			name: "db error",
			args: args{userID: 1, quizID: 5, kind: models.KindQuiz},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			attemptsR := newAttemptsMock(t, ctrl, tt.f)

			got, err := attemptsR.CreateAttempt(context.Background(), tt.args.userID, tt.args.quizID, tt.args.kind)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttemptsR_PendingAttempt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name: "found",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*models.Attempt) = models.Attempt{ID: 9, UserID: 1, Kind: models.KindQuiz}
						return nil
					})
			},
		},
		{
			name: "no pending attempt",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			attemptsR := newAttemptsMock(t, ctrl, tt.f)

			got, err := attemptsR.PendingAttempt(context.Background(), 1, 5, models.KindQuiz)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(9), got.ID)
		})
	}
}

func TestAttemptsR_DeleteAttempt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "items then attempt",
			f: func(mqi *mock_repository.MockQueryI) {
				gomock.InOrder(
					mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(9)).Return(nil, nil),
					mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(9)).Return(nil, nil),
				)
			},
			wantErr: false,
		},
		{
			name: "item delete fails",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(9)).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			attemptsR := newAttemptsMock(t, ctrl, tt.f)

			err := attemptsR.DeleteAttempt(context.Background(), 9)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestAttemptsR_AddItem(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attemptsR := newAttemptsMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(9), int64(10), models.NoAnswer, false).Return(nil, nil)
	})

	err := attemptsR.AddItem(context.Background(), models.AttemptItem{
		AttemptID:  9,
		QuestionID: 10,
		Selected:   models.NoAnswer,
		IsCorrect:  false,
	})
	require.NoError(t, err)
}
