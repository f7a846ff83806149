package model

// Meeting is the singleton record describing how the club meets. Time is a
// display string of the form "HH:MM" or "HH:MM – HH:MM"; the countdown only
// trusts its first five characters.
type Meeting struct {
	ClubName    string `yaml:"clubName"`
	Time        string `yaml:"time"`
	Timezone    string `yaml:"timezone"`
	MeetingInfo string `yaml:"meetingInfo"`
	MeetLink    string `yaml:"meetLink"`
}
