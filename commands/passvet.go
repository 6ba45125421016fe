package commands

type PassVetCommand struct {
	Rate    RateCommand    `command:"rate" description:"Rate a password, a list of passwords, or an archive of password lists"`
	Update  UpdateCommand  `command:"update" description:"Update passvet to the latest version"`
	Version VersionCommand `command:"version" description:"Displays passvet version" alias:"V"`
}

var PassVet PassVetCommand
