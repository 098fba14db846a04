package builtins

// defaultManifest is the compiled-in fallback table of manifest lines,
// used when no manifest path is configured. It covers enough of the
// runtime surface (a handful of constants, library calls, and event
// signatures) to compile and analyze realistic scripts without external
// files; a production embedder is expected to supply the full manifest
// via Load instead.
const defaultManifest = `
// boolean / control constants
const integer TRUE = 1
const integer FALSE = 0

// math constants
const float PI = 3.14159265
const float TWO_PI = 6.28318530
const float PI_BY_TWO = 1.57079633
const float DEG_TO_RAD = 0.01745329
const float RAD_TO_DEG = 57.29577951

// status / channel constants
const integer STATUS_PHYSICS = 1
const integer STATUS_ROTATE_X = 2
const integer STATUS_ROTATE_Y = 4
const integer STATUS_ROTATE_Z = 8
const integer PUBLIC_CHANNEL = 0
const integer DEBUG_CHANNEL = 2147483647

const vector ZERO_VECTOR = <0.0, 0.0, 0.0>
const rotation ZERO_ROTATION = <0.0, 0.0, 0.0, 1.0>

const key NULL_KEY = "00000000-0000-0000-0000-000000000000"

// library functions
float llFrand(float mag)
integer llRound(float val)
float llFabs(float val)
float llSqrt(float val)
float llPow(float base, float exponent)
integer llAbs(integer val)
string llGetOwner()
key llGetKey()
vector llGetPos()
rotation llGetRot()
void llSetPos(vector pos)
void llSetRot(rotation rot)
void llSetText(string text, vector color, float alpha)
void llSay(integer channel, string msg)
void llOwnerSay(string msg)
void llWhisper(integer channel, string msg)
void llShout(integer channel, string msg)
void llListen(integer channel, string name, key id, string msg)
void llSleep(float seconds)
void llResetScript()
string llList2String(list src, integer index)
integer llList2Integer(list src, integer index)
float llList2Float(list src, integer index)
integer llGetListLength(list src)
list llListSort(list src, integer stride, integer ascending)
string llDumpList2String(list src, string separator)
void llSetTimerEvent(float sec)
string llGetSubString(string src, integer start, integer end)
integer llStringLength(string src)
string llToUpper(string src)
string llToLower(string src)

// event signatures
event state_entry()
event state_exit()
event touch_start(integer num_detected)
event touch_end(integer num_detected)
event timer()
event listen(integer channel, string name, key id, string message)
event collision_start(integer num_detected)
event on_rez(integer start_param)
`
