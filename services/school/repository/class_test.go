package repository

import (
	"context"
	"errors"
	"testing"

	"schoolms/domain"
)

func TestGetAllClassesScopedByRole(t *testing.T) {
	db := newTestDB(t)
	repo := NewClassRepository(db)

	admin := seedUser(t, db, "admin@school.test", domain.RoleAdmin)
	teacherA := seedUser(t, db, "a@school.test", domain.RoleTeacher)
	teacherB := seedUser(t, db, "b@school.test", domain.RoleTeacher)

	seedClass(t, db, "Owned by A", &teacherA.ID)
	seedClass(t, db, "Owned by B", &teacherB.ID)
	seedClass(t, db, "Unowned", nil)

	forAdmin, err := repo.GetAllClasses(context.Background(), claimsFor(admin))
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(*forAdmin) != 3 {
		t.Fatalf("admin should see all classes, got %d", len(*forAdmin))
	}

	forA, err := repo.GetAllClasses(context.Background(), claimsFor(teacherA))
	if err != nil {
		t.Fatalf("teacher list failed: %v", err)
	}
	if len(*forA) != 1 {
		t.Fatalf("teacher should only see own classes, got %d", len(*forA))
	}
	if (*forA)[0].Name != "Owned by A" {
		t.Fatalf("teacher received a class they do not own")
	}
}

func TestGetAllClassesLiveStudentCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewClassRepository(db)
	teacher := seedUser(t, db, "teacher@school.test", domain.RoleTeacher)
	class := seedClass(t, db, "Math 101", &teacher.ID)

	seedStudent(t, db, "STU-1", &class.ID)
	seedStudent(t, db, "STU-2", &class.ID)

	classes, err := repo.GetAllClasses(context.Background(), claimsFor(teacher))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if (*classes)[0].StudentCount != 2 {
		t.Fatalf("expected live count 2, got %d", (*classes)[0].StudentCount)
	}
}

func TestUpdateClassNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewClassRepository(db)

	name := "whatever"
	if _, err := repo.UpdateClass(context.Background(), 42, &domain.ClassPatch{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteClassRemovesRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewClassRepository(db)
	teacher := seedUser(t, db, "teacher@school.test", domain.RoleTeacher)
	class := seedClass(t, db, "Math 101", &teacher.ID)

	if err := repo.DeleteClass(context.Background(), class.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.GetClassByID(context.Background(), class.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected class to be gone, got %v", err)
	}
}
