// Package store holds the demo dataset in memory. It is the only stateful
// component: collections are seeded once at construction and mutated for
// the lifetime of the process, with nothing written to disk. Ordering
// conventions matter to callers: wellbeing logs and forum posts are kept
// most-recent-first, chat message logs are chronological.
package store

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/pkg/apperrors"
)

// Data is the initial content of every collection. The seed package
// produces one; tests build smaller ones by hand.
type Data struct {
	Students      []models.Student
	Faculty       []models.Faculty
	Courses       []models.Course
	Enrollments   []models.Enrollment
	WellbeingLogs []models.WellbeingLog
	Counselors    []models.Counselor
	Appointments  []models.Appointment
	Posts         []models.ForumPost
	Contacts      []models.ChatContact
	Chats         map[string][]models.ChatMessage
	Milestones    []models.CareerMilestone
	Problems      []models.CodingProblem
	Badges        []models.Badge
	Leaderboard   []models.LeaderboardEntry
	Finance       []models.FinanceEntry
	Assessments   []models.RiskAssessment
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithClock replaces the wall clock, for deterministic timestamps in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the id generator, for deterministic ids in tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// Store is the in-memory database. All access goes through its methods;
// the mutex is needed because chat re-moderation runs on its own
// goroutine after the send call has returned.
type Store struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func() string

	students      []models.Student
	faculty       []models.Faculty
	courses       []models.Course
	enrollments   []models.Enrollment
	wellbeingLogs []models.WellbeingLog
	counselors    []models.Counselor
	appointments  []models.Appointment
	posts         []models.ForumPost
	contacts      []models.ChatContact
	chats         map[string][]models.ChatMessage
	milestones    []models.CareerMilestone
	problems      []models.CodingProblem
	badges        []models.Badge
	leaderboard   []models.LeaderboardEntry
	finance       []models.FinanceEntry
	assessments   map[string]models.RiskAssessment
}

// New builds a Store from seed data. The slices are cloned so the caller
// cannot alias the store's internals.
func New(data Data, opts ...Option) *Store {
	s := &Store{
		now:           time.Now,
		newID:         uuid.NewString,
		students:      slices.Clone(data.Students),
		faculty:       slices.Clone(data.Faculty),
		courses:       slices.Clone(data.Courses),
		enrollments:   slices.Clone(data.Enrollments),
		wellbeingLogs: slices.Clone(data.WellbeingLogs),
		counselors:    cloneCounselors(data.Counselors),
		appointments:  slices.Clone(data.Appointments),
		posts:         clonePosts(data.Posts),
		contacts:      slices.Clone(data.Contacts),
		chats:         map[string][]models.ChatMessage{},
		milestones:    slices.Clone(data.Milestones),
		problems:      slices.Clone(data.Problems),
		badges:        slices.Clone(data.Badges),
		leaderboard:   slices.Clone(data.Leaderboard),
		finance:       slices.Clone(data.Finance),
		assessments:   map[string]models.RiskAssessment{},
	}

	for contactID, messages := range data.Chats {
		s.chats[contactID] = slices.Clone(messages)
	}
	for _, a := range data.Assessments {
		s.assessments[a.StudentID] = a
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func cloneCounselors(in []models.Counselor) []models.Counselor {
	out := slices.Clone(in)
	for i := range out {
		out[i].AvailableSlots = slices.Clone(in[i].AvailableSlots)
	}
	return out
}

func clonePosts(in []models.ForumPost) []models.ForumPost {
	out := slices.Clone(in)
	for i := range out {
		out[i].Replies = slices.Clone(in[i].Replies)
	}
	return out
}

// Now returns the store's current time. Services use it so tests with a
// fixed clock stay deterministic end to end.
func (s *Store) Now() time.Time {
	return s.now()
}

// NewID returns a freshly generated id.
func (s *Store) NewID() string {
	return s.newID()
}

// --- Users ---

// Students returns all students in insertion order.
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.students)
}

// StudentByID looks up a student.
func (s *Store) StudentByID(id string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.ID == id {
			return st, nil
		}
	}
	return models.Student{}, apperrors.ErrStudentNotFound
}

// AddStudentXP adds experience points to a student and keeps the
// leaderboard row for that student in sync.
func (s *Store) AddStudentXP(studentID string, xp int) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.students {
		if s.students[i].ID == studentID {
			s.students[i].XP += xp
			for j := range s.leaderboard {
				if s.leaderboard[j].Name == s.students[i].Name {
					s.leaderboard[j].XP = s.students[i].XP
				}
			}
			return s.students[i], nil
		}
	}
	return models.Student{}, apperrors.ErrStudentNotFound
}

// FacultyMembers returns all faculty in insertion order.
func (s *Store) FacultyMembers() []models.Faculty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.faculty)
}

// FacultyByID looks up a faculty member.
func (s *Store) FacultyByID(id string) (models.Faculty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.faculty {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Faculty{}, apperrors.ErrFacultyNotFound
}

// --- Courses and enrollments ---

// Courses returns all courses.
func (s *Store) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.courses)
}

// CourseByID looks up a course.
func (s *Store) CourseByID(id string) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Course{}, apperrors.ErrCourseNotFound
}

// CoursesByInstructor returns the courses taught by one faculty member.
func (s *Store) CoursesByInstructor(instructorID string) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Course
	for _, c := range s.courses {
		if c.InstructorID == instructorID {
			out = append(out, c)
		}
	}
	return out
}

// EnrollmentsByStudent returns a student's enrollments.
func (s *Store) EnrollmentsByStudent(studentID string) []models.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Enrollment
	for _, e := range s.enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out
}

// EnrollmentsByCourse returns the enrollments for one course.
func (s *Store) EnrollmentsByCourse(courseID string) []models.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Enrollment
	for _, e := range s.enrollments {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out
}

// --- Wellbeing logs ---

// WellbeingLogs returns a student's logs, most recent first.
func (s *Store) WellbeingLogs(studentID string) []models.WellbeingLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.WellbeingLog
	for _, l := range s.wellbeingLogs {
		if l.StudentID == studentID {
			out = append(out, l)
		}
	}
	return out
}

// AddWellbeingLog inserts a log at the head of the series. Missing id
// and timestamp are filled from the store's generators.
func (s *Store) AddWellbeingLog(log models.WellbeingLog) models.WellbeingLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	if log.ID == "" {
		log.ID = s.newID()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = s.now()
	}
	s.wellbeingLogs = append([]models.WellbeingLog{log}, s.wellbeingLogs...)
	return log
}

// --- Counseling ---

// Counselors returns all counselors.
func (s *Store) Counselors() []models.Counselor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCounselors(s.counselors)
}

// CounselorByID looks up a counselor.
func (s *Store) CounselorByID(id string) (models.Counselor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.counselors {
		if c.ID == id {
			c.AvailableSlots = slices.Clone(c.AvailableSlots)
			return c, nil
		}
	}
	return models.Counselor{}, apperrors.ErrCounselorNotFound
}

// BookSlot atomically checks that the slot is still offered by the
// counselor, removes it, and records the appointment. A slot that has
// already been taken fails with ErrSlotTaken and leaves the store
// unchanged.
func (s *Store) BookSlot(counselorID, slot string, appt models.Appointment) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.counselors {
		if s.counselors[i].ID == counselorID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Appointment{}, apperrors.ErrCounselorNotFound
	}

	slotIdx := slices.Index(s.counselors[idx].AvailableSlots, slot)
	if slotIdx < 0 {
		return models.Appointment{}, apperrors.ErrSlotTaken
	}
	s.counselors[idx].AvailableSlots = slices.Delete(
		slices.Clone(s.counselors[idx].AvailableSlots), slotIdx, slotIdx+1)

	if appt.ID == "" {
		appt.ID = s.newID()
	}
	s.appointments = append(s.appointments, appt)
	return appt, nil
}

// Appointments returns all booked appointments in booking order.
func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.appointments)
}

// --- Forum ---

// Posts returns all forum posts, most recent first.
func (s *Store) Posts() []models.ForumPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.posts)
}

// PostByID looks up a forum post.
func (s *Store) PostByID(id string) (models.ForumPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			p.Replies = slices.Clone(p.Replies)
			return p, nil
		}
	}
	return models.ForumPost{}, apperrors.ErrPostNotFound
}

// AddPost prepends a post so listings surface the newest first. Missing
// id and timestamp are filled in.
func (s *Store) AddPost(post models.ForumPost) models.ForumPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	if post.ID == "" {
		post.ID = s.newID()
	}
	if post.Timestamp.IsZero() {
		post.Timestamp = s.now()
	}
	if post.Replies == nil {
		post.Replies = []models.ForumReply{}
	}
	s.posts = append([]models.ForumPost{post}, s.posts...)
	return post
}

// LikePost increments the like counter. Likes only ever grow, so the
// non-negative invariant holds by construction.
func (s *Store) LikePost(id string) (models.ForumPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Likes++
			p := s.posts[i]
			p.Replies = slices.Clone(p.Replies)
			return p, nil
		}
	}
	return models.ForumPost{}, apperrors.ErrPostNotFound
}

// AddReply appends a reply to its parent post. Missing id and timestamp
// are filled in.
func (s *Store) AddReply(postID string, reply models.ForumReply) (models.ForumReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			if reply.ID == "" {
				reply.ID = s.newID()
			}
			if reply.Timestamp.IsZero() {
				reply.Timestamp = s.now()
			}
			s.posts[i].Replies = append(s.posts[i].Replies, reply)
			return reply, nil
		}
	}
	return models.ForumReply{}, apperrors.ErrPostNotFound
}

// --- Chat ---

// Contacts returns the chat contact list.
func (s *Store) Contacts() []models.ChatContact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.contacts)
}

// Messages returns one conversation's log in chronological order.
func (s *Store) Messages(contactID string) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, err := s.contactLocked(contactID); err != nil {
		return nil, err
	}
	return slices.Clone(s.chats[contactID]), nil
}

func (s *Store) contactLocked(id string) (models.ChatContact, error) {
	for _, c := range s.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.ChatContact{}, apperrors.ErrContactNotFound
}

// AppendMessage appends to the end of the conversation log, preserving
// submission order. Missing id and timestamp are filled in.
func (s *Store) AppendMessage(contactID string, msg models.ChatMessage) (models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.contactLocked(contactID); err != nil {
		return models.ChatMessage{}, err
	}
	if msg.ID == "" {
		msg.ID = s.newID()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.now()
	}
	s.chats[contactID] = append(s.chats[contactID], msg)
	return msg, nil
}

// RedactMessage replaces a message's text in place. The record itself
// survives so the conversation keeps its shape.
func (s *Store) RedactMessage(contactID, messageID, notice string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.chats[contactID]
	for i := range log {
		if log[i].ID == messageID {
			log[i].Text = notice
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

// --- Career milestones ---

// Milestones returns one student's career milestones in insertion order.
func (s *Store) Milestones(studentID string) []models.CareerMilestone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CareerMilestone
	for _, m := range s.milestones {
		if m.StudentID == studentID {
			out = append(out, m)
		}
	}
	return out
}

// MilestoneByID looks up a milestone.
func (s *Store) MilestoneByID(id string) (models.CareerMilestone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.milestones {
		if m.ID == id {
			return m, nil
		}
	}
	return models.CareerMilestone{}, apperrors.ErrMilestoneNotFound
}

// SetMilestoneStatus updates a milestone's status. Transition rules are
// enforced by the career service before calling here.
func (s *Store) SetMilestoneStatus(id string, status models.MilestoneStatus) (models.CareerMilestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.milestones {
		if s.milestones[i].ID == id {
			s.milestones[i].Status = status
			return s.milestones[i], nil
		}
	}
	return models.CareerMilestone{}, apperrors.ErrMilestoneNotFound
}

// AddMilestones appends generated roadmap milestones for a student.
func (s *Store) AddMilestones(milestones []models.CareerMilestone) []models.CareerMilestone {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range milestones {
		if milestones[i].ID == "" {
			milestones[i].ID = s.newID()
		}
	}
	s.milestones = append(s.milestones, milestones...)
	return milestones
}

// --- Coding progress ---

// Problems returns the global demo problem set.
func (s *Store) Problems() []models.CodingProblem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.problems)
}

// SetProblemSolved flips a problem's solved flag.
func (s *Store) SetProblemSolved(id string, solved bool) (models.CodingProblem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.problems {
		if s.problems[i].ID == id {
			s.problems[i].Solved = solved
			return s.problems[i], nil
		}
	}
	return models.CodingProblem{}, apperrors.ErrProblemNotFound
}

// Badges returns the badge catalog.
func (s *Store) Badges() []models.Badge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.badges)
}

// UnlockBadge marks a badge unlocked. Unknown ids are a NotFound; the
// caller decides whether that matters.
func (s *Store) UnlockBadge(id string) (models.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.badges {
		if s.badges[i].ID == id {
			s.badges[i].Unlocked = true
			return s.badges[i], nil
		}
	}
	return models.Badge{}, apperrors.ErrResourceNotFound
}

// Leaderboard returns the XP leaderboard rows as stored.
func (s *Store) Leaderboard() []models.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.leaderboard)
}

// --- Finance ---

// FinanceEntries returns the spending ledger in insertion order.
func (s *Store) FinanceEntries() []models.FinanceEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.finance)
}

// AddFinanceEntry appends a spending record.
func (s *Store) AddFinanceEntry(entry models.FinanceEntry) models.FinanceEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = s.newID()
	}
	s.finance = append(s.finance, entry)
	return entry
}

// --- Risk assessments ---

// Assessment returns the current assessment for a student, if any.
func (s *Store) Assessment(studentID string) (models.RiskAssessment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assessments[studentID]
	return a, ok
}

// SaveAssessment overwrites the current assessment for its student.
func (s *Store) SaveAssessment(a models.RiskAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessments[a.StudentID] = a
}

// SetInterventionStatus updates the follow-up state on the current
// assessment.
func (s *Store) SetInterventionStatus(studentID string, status models.InterventionStatus) (models.RiskAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assessments[studentID]
	if !ok {
		return models.RiskAssessment{}, apperrors.ErrResourceNotFound
	}
	a.InterventionStatus = status
	s.assessments[studentID] = a
	return a, nil
}
