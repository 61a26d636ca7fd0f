package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Deepti-Velip/Cafe-Management-backend/entity"

	"gorm.io/gorm"
)

func TestTableFindByNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewTableRepository(db)
	ctx := context.Background()

	seeded := entity.Table{TableNo: 7, Capacity: 4, Status: entity.TableAvailable}
	if err := repo.Create(ctx, &seeded); err != nil {
		t.Fatalf("create table: %v", err)
	}

	got, err := repo.FindByNumber(ctx, 7)
	if err != nil {
		t.Fatalf("FindByNumber: %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("got table %d, want %d", got.ID, seeded.ID)
	}

	if _, err := repo.FindByNumber(ctx, 99); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("missing table_no: got %v, want ErrRecordNotFound", err)
	}
}

func TestTableDuplicateNumberRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewTableRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &entity.Table{TableNo: 1, Capacity: 2, Status: entity.TableAvailable}); err != nil {
		t.Fatalf("create table: %v", err)
	}
	err := repo.Create(ctx, &entity.Table{TableNo: 1, Capacity: 6, Status: entity.TableAvailable})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate table_no: got %v, want ErrDuplicatedKey", err)
	}
}

func TestTransitionStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewTableRepository(db)
	ctx := context.Background()

	tb := entity.Table{TableNo: 3, Capacity: 4, Status: entity.TableOccupied}
	if err := repo.Create(ctx, &tb); err != nil {
		t.Fatalf("create table: %v", err)
	}

	ok, err := repo.TransitionStatus(ctx, tb.ID, entity.TableAvailable)
	if err != nil || !ok {
		t.Fatalf("TransitionStatus: ok=%v err=%v", ok, err)
	}
	got, _ := repo.FindByID(ctx, tb.ID)
	if got.Status != entity.TableAvailable {
		t.Errorf("status = %q, want available", got.Status)
	}

	// id ไม่มีอยู่ = ok=false แต่ไม่ error
	ok, err = repo.TransitionStatus(ctx, 999, entity.TableAvailable)
	if err != nil {
		t.Fatalf("TransitionStatus missing id: %v", err)
	}
	if ok {
		t.Errorf("TransitionStatus on missing id reported success")
	}
}

func TestOccupyIfFree(t *testing.T) {
	db := newTestDB(t)
	repo := NewTableRepository(db)
	ctx := context.Background()

	tb := entity.Table{TableNo: 5, Capacity: 4, Status: entity.TableAvailable}
	if err := repo.Create(ctx, &tb); err != nil {
		t.Fatalf("create table: %v", err)
	}

	ok, err := repo.OccupyIfFree(ctx, tb.ID)
	if err != nil || !ok {
		t.Fatalf("first occupy: ok=%v err=%v", ok, err)
	}

	// ครั้งที่สองต้องแพ้ — โต๊ะ occupied ไปแล้ว
	ok, err = repo.OccupyIfFree(ctx, tb.ID)
	if err != nil {
		t.Fatalf("second occupy: %v", err)
	}
	if ok {
		t.Errorf("second occupy won on an occupied table")
	}

	// reserved ยังแย่งได้ (ลูกค้าที่จองมาถึงแล้ว checkout)
	reserved := entity.Table{TableNo: 6, Capacity: 4, Status: entity.TableReserved}
	if err := repo.Create(ctx, &reserved); err != nil {
		t.Fatalf("create reserved table: %v", err)
	}
	ok, err = repo.OccupyIfFree(ctx, reserved.ID)
	if err != nil || !ok {
		t.Fatalf("occupy reserved: ok=%v err=%v", ok, err)
	}
}
